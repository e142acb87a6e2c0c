package models

import "time"

// Leaderboard is a per-user snapshot of activity totals and rank. It is
// materialized by the seed pipeline and never recomputed when activities
// change afterwards.
type Leaderboard struct {
	ID              ID `gorm:"primaryKey"`
	UserID          ID `gorm:"index;not null"`
	TeamID          ID
	TotalCalories   int
	TotalActivities int
	Rank            int
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Leaderboard) TableName() string {
	return "leaderboard"
}
