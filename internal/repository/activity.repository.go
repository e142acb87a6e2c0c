package repository

import (
	"octofit/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindAll() ([]models.Activity, error)
	FindAllByUserID(userID models.ID) ([]models.Activity, error)
	FindByID(id models.ID) (*models.Activity, error)
	Update(activity *models.Activity) error
	Delete(id models.ID) error
	DeleteAll() error
	Count() (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) FindAll() ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindAllByUserID(userID models.ID) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", userID).Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindByID(id models.ID) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

func (r *activityRepository) Delete(id models.ID) error {
	return r.db.Delete(&models.Activity{}, id).Error
}

func (r *activityRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Activity{}).Error
}

func (r *activityRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).Count(&count).Error
	return count, err
}
