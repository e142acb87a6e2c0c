// Package leaderboard derives per-user activity totals and assigns dense
// ranks. Both functions are pure: they never touch the store and never fail.
package leaderboard

import (
	"sort"

	"octofit/internal/models"
)

// Entry is one user's aggregate standing. Rank is zero until assigned by Rank.
type Entry struct {
	UserID          models.ID
	TeamID          models.ID
	TotalCalories   int
	TotalActivities int
	Rank            int
}

// Aggregate reduces activities to the calorie sum and record count for one
// user. An unknown user simply has no matches and yields (0, 0).
func Aggregate(userID models.ID, activities []models.Activity) (totalCalories, totalActivities int) {
	for _, a := range activities {
		if a.UserID == userID {
			totalCalories += a.Calories
			totalActivities++
		}
	}
	return totalCalories, totalActivities
}

// Rank orders entries by total calories descending and assigns ranks 1..N.
// The sort is stable, so ties keep their input order and receive consecutive
// distinct ranks rather than sharing one.
func Rank(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCalories > ranked[j].TotalCalories
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
