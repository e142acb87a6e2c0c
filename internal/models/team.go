package models

import "time"

type Team struct {
	ID          ID        `gorm:"primaryKey"`
	Name        string    `gorm:"size:200;not null"`
	Description string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
