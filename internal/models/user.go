package models

import "time"

type User struct {
	ID        ID        `gorm:"primaryKey"`
	Name      string    `gorm:"size:200;not null"`
	Email     string    `gorm:"size:254;uniqueIndex;not null"`
	TeamID    *ID       `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
