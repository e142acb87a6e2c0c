package models

import "time"

// Activity is a logged exercise session. UserID is a soft reference: no
// foreign key constraint is enforced, and calories is caller-supplied, not
// derived from duration.
type Activity struct {
	ID           ID        `gorm:"primaryKey"`
	UserID       ID        `gorm:"index;not null"`
	ActivityType string    `gorm:"size:100;not null"`
	Duration     int       // minutes
	Calories     int
	Date         time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}
