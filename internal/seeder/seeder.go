// Package seeder resets the store and populates it with the demo dataset,
// then materializes the leaderboard snapshot from the generated activities.
// The sequence is not transactional: a failure aborts the run and may leave
// the store partially populated. Intended for development use only.
package seeder

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"octofit/internal/leaderboard"
	"octofit/internal/models"
	"octofit/internal/repository"
)

type hero struct {
	name  string
	email string
}

var marvelHeroes = []hero{
	{"Iron Man", "tony.stark@marvel.com"},
	{"Captain America", "steve.rogers@marvel.com"},
	{"Thor", "thor.odinson@marvel.com"},
	{"Black Widow", "natasha.romanoff@marvel.com"},
	{"Hulk", "bruce.banner@marvel.com"},
	{"Spider-Man", "peter.parker@marvel.com"},
}

var dcHeroes = []hero{
	{"Superman", "clark.kent@dc.com"},
	{"Batman", "bruce.wayne@dc.com"},
	{"Wonder Woman", "diana.prince@dc.com"},
	{"The Flash", "barry.allen@dc.com"},
	{"Aquaman", "arthur.curry@dc.com"},
	{"Green Lantern", "hal.jordan@dc.com"},
}

type activityType struct {
	name           string
	caloriesPerMin int
}

var activityTypes = []activityType{
	{"Running", 10},
	{"Weightlifting", 7},
	{"Cycling", 8},
	{"Swimming", 11},
	{"Boxing", 12},
	{"Yoga", 4},
}

var workoutCatalog = []models.Workout{
	{
		Title:            "Superhero Strength Training",
		Description:      "Build strength worthy of a superhero with this intense workout",
		Difficulty:       "Hard",
		Duration:         60,
		CaloriesEstimate: 450,
		Exercises: models.ExerciseList{
			{Name: "Bench Press", Sets: 4, Reps: 10},
			{Name: "Squats", Sets: 4, Reps: 12},
			{Name: "Deadlifts", Sets: 3, Reps: 8},
			{Name: "Pull-ups", Sets: 3, Reps: 15},
		},
	},
	{
		Title:            "Speed Force Cardio",
		Description:      "Flash-inspired cardio workout for lightning-fast results",
		Difficulty:       "Medium",
		Duration:         30,
		CaloriesEstimate: 350,
		Exercises: models.ExerciseList{
			{Name: "Sprint Intervals", Sets: 5, Duration: "2 min"},
			{Name: "Jump Rope", Sets: 3, Duration: "3 min"},
			{Name: "Burpees", Sets: 3, Reps: 20},
		},
	},
	{
		Title:            "Warrior Yoga Flow",
		Description:      "Wonder Woman-inspired flexibility and balance routine",
		Difficulty:       "Easy",
		Duration:         45,
		CaloriesEstimate: 180,
		Exercises: models.ExerciseList{
			{Name: "Warrior Pose", Sets: 3, Duration: "1 min each side"},
			{Name: "Tree Pose", Sets: 3, Duration: "1 min each side"},
			{Name: "Sun Salutation", Sets: 5, Reps: 10},
		},
	},
	{
		Title:            "Hulk Smash HIIT",
		Description:      "High-intensity workout to unleash your inner Hulk",
		Difficulty:       "Hard",
		Duration:         40,
		CaloriesEstimate: 500,
		Exercises: models.ExerciseList{
			{Name: "Box Jumps", Sets: 4, Reps: 15},
			{Name: "Kettlebell Swings", Sets: 4, Reps: 20},
			{Name: "Mountain Climbers", Sets: 4, Reps: 30},
			{Name: "Battle Ropes", Sets: 3, Duration: "45 sec"},
		},
	},
	{
		Title:            "Atlantean Swimming Circuit",
		Description:      "Aquaman-approved aquatic workout routine",
		Difficulty:       "Medium",
		Duration:         50,
		CaloriesEstimate: 550,
		Exercises: models.ExerciseList{
			{Name: "Freestyle", Sets: 10, Distance: "100m"},
			{Name: "Backstroke", Sets: 5, Distance: "100m"},
			{Name: "Underwater Swimming", Sets: 5, Distance: "25m"},
		},
	},
	{
		Title:            "Web-Slinger Core Workout",
		Description:      "Spider-Man inspired core strengthening routine",
		Difficulty:       "Medium",
		Duration:         35,
		CaloriesEstimate: 280,
		Exercises: models.ExerciseList{
			{Name: "Plank", Sets: 3, Duration: "2 min"},
			{Name: "Hanging Leg Raises", Sets: 3, Reps: 15},
			{Name: "Russian Twists", Sets: 3, Reps: 30},
			{Name: "Bicycle Crunches", Sets: 3, Reps: 40},
		},
	},
}

// Summary holds the per-entity record counts after a completed run.
type Summary struct {
	Teams       int64
	Users       int64
	Activities  int64
	Leaderboard int64
	Workouts    int64
}

type Seeder struct {
	users        repository.UserRepository
	teams        repository.TeamRepository
	activities   repository.ActivityRepository
	leaderboards repository.LeaderboardRepository
	workouts     repository.WorkoutRepository
	rng          *rand.Rand
}

// New builds a seeder over the given repositories. The random source is
// injected so tests can seed it for reproducible generation.
func New(
	users repository.UserRepository,
	teams repository.TeamRepository,
	activities repository.ActivityRepository,
	leaderboards repository.LeaderboardRepository,
	workouts repository.WorkoutRepository,
	rng *rand.Rand,
) *Seeder {
	return &Seeder{
		users:        users,
		teams:        teams,
		activities:   activities,
		leaderboards: leaderboards,
		workouts:     workouts,
		rng:          rng,
	}
}

// Run clears all existing records and repopulates the store: 2 teams, 12
// users split 6/6, 5-10 random activities per user, one leaderboard entry per
// user derived from those activities, and 6 fixed workouts.
func (s *Seeder) Run() (Summary, error) {
	if err := s.reset(); err != nil {
		return Summary{}, err
	}

	log.Println("Creating teams...")
	teamMarvel := models.Team{Name: "Team Marvel", Description: "Earth's Mightiest Heroes"}
	if err := s.teams.Create(&teamMarvel); err != nil {
		return Summary{}, fmt.Errorf("failed to create team: %w", err)
	}
	teamDC := models.Team{Name: "Team DC", Description: "Justice League Champions"}
	if err := s.teams.Create(&teamDC); err != nil {
		return Summary{}, fmt.Errorf("failed to create team: %w", err)
	}
	log.Printf("Created teams: %s, %s", teamMarvel.Name, teamDC.Name)

	log.Println("Creating superhero users...")
	allUsers := make([]models.User, 0, len(marvelHeroes)+len(dcHeroes))
	for _, h := range marvelHeroes {
		teamID := teamMarvel.ID
		user := models.User{Name: h.name, Email: h.email, TeamID: &teamID}
		if err := s.users.Create(&user); err != nil {
			return Summary{}, fmt.Errorf("failed to create user %s: %w", h.email, err)
		}
		allUsers = append(allUsers, user)
	}
	for _, h := range dcHeroes {
		teamID := teamDC.ID
		user := models.User{Name: h.name, Email: h.email, TeamID: &teamID}
		if err := s.users.Create(&user); err != nil {
			return Summary{}, fmt.Errorf("failed to create user %s: %w", h.email, err)
		}
		allUsers = append(allUsers, user)
	}
	log.Printf("Created %d superhero users", len(allUsers))

	log.Println("Creating activities...")
	allActivities, err := s.createActivities(allUsers)
	if err != nil {
		return Summary{}, err
	}
	log.Printf("Created %d activities", len(allActivities))

	log.Println("Creating leaderboard entries...")
	if err := s.createLeaderboard(allUsers, allActivities); err != nil {
		return Summary{}, err
	}
	log.Printf("Created %d leaderboard entries", len(allUsers))

	log.Println("Creating workouts...")
	for _, w := range workoutCatalog {
		workout := w
		if err := s.workouts.Create(&workout); err != nil {
			return Summary{}, fmt.Errorf("failed to create workout %q: %w", w.Title, err)
		}
	}
	log.Printf("Created %d workout routines", len(workoutCatalog))

	return s.summary()
}

func (s *Seeder) reset() error {
	log.Println("Clearing existing data...")
	steps := []struct {
		name string
		fn   func() error
	}{
		{"leaderboard", s.leaderboards.DeleteAll},
		{"activities", s.activities.DeleteAll},
		{"users", s.users.DeleteAll},
		{"teams", s.teams.DeleteAll},
		{"workouts", s.workouts.DeleteAll},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("failed to clear %s: %w", step.name, err)
		}
	}
	log.Println("Existing data cleared")
	return nil
}

func (s *Seeder) createActivities(users []models.User) ([]models.Activity, error) {
	now := time.Now()
	var created []models.Activity
	for _, user := range users {
		numActivities := 5 + s.rng.Intn(6)
		for i := 0; i < numActivities; i++ {
			at := activityTypes[s.rng.Intn(len(activityTypes))]
			duration := 20 + s.rng.Intn(71)
			daysAgo := s.rng.Intn(31)

			activity := models.Activity{
				UserID:       user.ID,
				ActivityType: at.name,
				Duration:     duration,
				Calories:     duration * at.caloriesPerMin,
				Date:         now.AddDate(0, 0, -daysAgo),
			}
			if err := s.activities.Create(&activity); err != nil {
				return nil, fmt.Errorf("failed to create activity for %s: %w", user.Email, err)
			}
			created = append(created, activity)
		}
	}
	return created, nil
}

// createLeaderboard aggregates per user in the team-grouped enumeration order
// used above, so equal-calorie users resolve ties by that order.
func (s *Seeder) createLeaderboard(users []models.User, activities []models.Activity) error {
	entries := make([]leaderboard.Entry, 0, len(users))
	for _, user := range users {
		totalCalories, totalActivities := leaderboard.Aggregate(user.ID, activities)
		var teamID models.ID
		if user.TeamID != nil {
			teamID = *user.TeamID
		}
		entries = append(entries, leaderboard.Entry{
			UserID:          user.ID,
			TeamID:          teamID,
			TotalCalories:   totalCalories,
			TotalActivities: totalActivities,
		})
	}

	for _, entry := range leaderboard.Rank(entries) {
		record := models.Leaderboard{
			UserID:          entry.UserID,
			TeamID:          entry.TeamID,
			TotalCalories:   entry.TotalCalories,
			TotalActivities: entry.TotalActivities,
			Rank:            entry.Rank,
		}
		if err := s.leaderboards.Create(&record); err != nil {
			return fmt.Errorf("failed to create leaderboard entry: %w", err)
		}
	}
	return nil
}

func (s *Seeder) summary() (Summary, error) {
	var summary Summary
	counts := []struct {
		name string
		fn   func() (int64, error)
		dest *int64
	}{
		{"teams", s.teams.Count, &summary.Teams},
		{"users", s.users.Count, &summary.Users},
		{"activities", s.activities.Count, &summary.Activities},
		{"leaderboard", s.leaderboards.Count, &summary.Leaderboard},
		{"workouts", s.workouts.Count, &summary.Workouts},
	}
	for _, c := range counts {
		n, err := c.fn()
		if err != nil {
			return Summary{}, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dest = n
	}
	return summary, nil
}
