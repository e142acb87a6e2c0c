package repository

import (
	"octofit/internal/models"

	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	Create(entry *models.Leaderboard) error
	FindAll() ([]models.Leaderboard, error)
	FindByID(id models.ID) (*models.Leaderboard, error)
	Update(entry *models.Leaderboard) error
	Delete(id models.ID) error
	DeleteAll() error
	Count() (int64, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db}
}

func (r *leaderboardRepository) Create(entry *models.Leaderboard) error {
	return r.db.Create(entry).Error
}

func (r *leaderboardRepository) FindAll() ([]models.Leaderboard, error) {
	var entries []models.Leaderboard
	err := r.db.Order("rank").Find(&entries).Error
	return entries, err
}

func (r *leaderboardRepository) FindByID(id models.ID) (*models.Leaderboard, error) {
	var entry models.Leaderboard
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *leaderboardRepository) Update(entry *models.Leaderboard) error {
	return r.db.Save(entry).Error
}

func (r *leaderboardRepository) Delete(id models.ID) error {
	return r.db.Delete(&models.Leaderboard{}, id).Error
}

func (r *leaderboardRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Leaderboard{}).Error
}

func (r *leaderboardRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Leaderboard{}).Count(&count).Error
	return count, err
}
