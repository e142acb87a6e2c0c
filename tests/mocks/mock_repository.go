package mocks

import (
	"octofit/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id models.ID) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id models.ID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByTeamID(teamID models.ID) (int64, error) {
	args := m.Called(teamID)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockTeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(team *models.Team) error {
	args := m.Called(team)
	return args.Error(0)
}

func (m *MockTeamRepository) FindAll() ([]models.Team, error) {
	args := m.Called()
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByID(id models.ID) (*models.Team, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamRepository) Update(team *models.Team) error {
	args := m.Called(team)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(id models.ID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTeamRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTeamRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindAll() ([]models.Activity, error) {
	args := m.Called()
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindAllByUserID(userID models.ID) ([]models.Activity, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByID(id models.ID) (*models.Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityRepository) Update(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) Delete(id models.ID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockActivityRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockActivityRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockLeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) Create(entry *models.Leaderboard) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) FindAll() ([]models.Leaderboard, error) {
	args := m.Called()
	return args.Get(0).([]models.Leaderboard), args.Error(1)
}

func (m *MockLeaderboardRepository) FindByID(id models.ID) (*models.Leaderboard, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Leaderboard), args.Error(1)
}

func (m *MockLeaderboardRepository) Update(entry *models.Leaderboard) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) Delete(id models.ID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockLeaderboardRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockWorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(workout *models.Workout) error {
	args := m.Called(workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) FindAll() ([]models.Workout, error) {
	args := m.Called()
	return args.Get(0).([]models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) FindByID(id models.ID) (*models.Workout, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) Update(workout *models.Workout) error {
	args := m.Called(workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(id models.ID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWorkoutRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWorkoutRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
