package repository

import (
	"octofit/internal/models"

	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(workout *models.Workout) error
	FindAll() ([]models.Workout, error)
	FindByID(id models.ID) (*models.Workout, error)
	Update(workout *models.Workout) error
	Delete(id models.ID) error
	DeleteAll() error
	Count() (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db}
}

func (r *workoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

func (r *workoutRepository) FindAll() ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Find(&workouts).Error
	return workouts, err
}

func (r *workoutRepository) FindByID(id models.ID) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.First(&workout, id).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) Update(workout *models.Workout) error {
	return r.db.Save(workout).Error
}

func (r *workoutRepository) Delete(id models.ID) error {
	return r.db.Delete(&models.Workout{}, id).Error
}

func (r *workoutRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Workout{}).Error
}

func (r *workoutRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Workout{}).Count(&count).Error
	return count, err
}
