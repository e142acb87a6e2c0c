// Package serializers maps stored records to their wire shape. Field lists
// are explicit per entity; identity is rendered as a string and timestamps as
// ISO-8601 here and nowhere else.
package serializers

import (
	"time"

	"octofit/internal/models"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	TeamID    *string `json:"team_id"`
	CreatedAt string  `json:"created_at"`
}

type TeamResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int64  `json:"member_count"`
	CreatedAt   string `json:"created_at"`
}

type ActivityResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	ActivityType string `json:"activity_type"`
	Duration     int    `json:"duration"`
	Calories     int    `json:"calories"`
	Date         string `json:"date"`
	CreatedAt    string `json:"created_at"`
}

type LeaderboardResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	TeamID          string `json:"team_id"`
	TotalCalories   int    `json:"total_calories"`
	TotalActivities int    `json:"total_activities"`
	Rank            int    `json:"rank"`
	UpdatedAt       string `json:"updated_at"`
}

type WorkoutResponse struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Difficulty       string              `json:"difficulty"`
	Duration         int                 `json:"duration"`
	CaloriesEstimate int                 `json:"calories_estimate"`
	Exercises        models.ExerciseList `json:"exercises"`
	CreatedAt        string              `json:"created_at"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func SerializeUser(u models.User) UserResponse {
	var teamID *string
	if u.TeamID != nil {
		s := u.TeamID.String()
		teamID = &s
	}
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		TeamID:    teamID,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func SerializeUsers(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = SerializeUser(u)
	}
	return responses
}

// SerializeTeam renders a team together with its derived member count. The
// count is computed by the caller at serialization time, never stored.
func SerializeTeam(t models.Team, memberCount int64) TeamResponse {
	return TeamResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		MemberCount: memberCount,
		CreatedAt:   formatTime(t.CreatedAt),
	}
}

func SerializeActivity(a models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID.String(),
		UserID:       a.UserID.String(),
		ActivityType: a.ActivityType,
		Duration:     a.Duration,
		Calories:     a.Calories,
		Date:         formatTime(a.Date),
		CreatedAt:    formatTime(a.CreatedAt),
	}
}

func SerializeActivities(activities []models.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		responses[i] = SerializeActivity(a)
	}
	return responses
}

func SerializeLeaderboard(e models.Leaderboard) LeaderboardResponse {
	return LeaderboardResponse{
		ID:              e.ID.String(),
		UserID:          e.UserID.String(),
		TeamID:          e.TeamID.String(),
		TotalCalories:   e.TotalCalories,
		TotalActivities: e.TotalActivities,
		Rank:            e.Rank,
		UpdatedAt:       formatTime(e.UpdatedAt),
	}
}

func SerializeLeaderboardEntries(entries []models.Leaderboard) []LeaderboardResponse {
	responses := make([]LeaderboardResponse, len(entries))
	for i, e := range entries {
		responses[i] = SerializeLeaderboard(e)
	}
	return responses
}

func SerializeWorkout(w models.Workout) WorkoutResponse {
	exercises := w.Exercises
	if exercises == nil {
		exercises = models.ExerciseList{}
	}
	return WorkoutResponse{
		ID:               w.ID.String(),
		Title:            w.Title,
		Description:      w.Description,
		Difficulty:       w.Difficulty,
		Duration:         w.Duration,
		CaloriesEstimate: w.CaloriesEstimate,
		Exercises:        exercises,
		CreatedAt:        formatTime(w.CreatedAt),
	}
}

func SerializeWorkouts(workouts []models.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = SerializeWorkout(w)
	}
	return responses
}
