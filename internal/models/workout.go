package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Exercise is one element of a workout's exercise list. The list has no fixed
// schema per element: an exercise carries reps, a duration or a distance
// depending on its kind, so absent fields are omitted on the wire.
type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets,omitempty"`
	Reps     int    `json:"reps,omitempty"`
	Duration string `json:"duration,omitempty"`
	Distance string `json:"distance,omitempty"`
}

// ExerciseList stores the ordered exercise sequence as a jsonb column.
type ExerciseList []Exercise

func (l ExerciseList) Value() (driver.Value, error) {
	if l == nil {
		l = ExerciseList{}
	}
	return json.Marshal(l)
}

func (l *ExerciseList) Scan(value interface{}) error {
	if value == nil {
		*l = ExerciseList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ExerciseList", value)
	}
	return json.Unmarshal(raw, l)
}

type Workout struct {
	ID               ID     `gorm:"primaryKey"`
	Title            string `gorm:"size:200;not null"`
	Description      string
	Difficulty       string `gorm:"size:50"`
	Duration         int    // minutes
	CaloriesEstimate int
	Exercises        ExerciseList `gorm:"type:jsonb"`
	CreatedAt        time.Time    `gorm:"autoCreateTime"`
}
