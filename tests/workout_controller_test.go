package tests

import (
	"net/http"
	"testing"

	"octofit/internal/controllers"
	"octofit/internal/models"
	"octofit/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupWorkoutController() (*mocks.MockWorkoutRepository, *gin.Engine) {
	mockRepo := new(mocks.MockWorkoutRepository)
	controller := controllers.NewWorkoutController(mockRepo)
	router := setupTestRouter()
	router.GET("/workouts", controller.GetAllWorkouts)
	router.POST("/workouts", controller.CreateWorkout)
	router.GET("/workouts/:id", controller.GetWorkoutByID)
	router.PUT("/workouts/:id", controller.UpdateWorkout)
	router.DELETE("/workouts/:id", controller.DeleteWorkout)
	return mockRepo, router
}

func TestGetAllWorkouts(t *testing.T) {
	mockRepo, router := setupWorkoutController()

	mockRepo.On("FindAll").Return([]models.Workout{
		{
			ID: 1, Title: "Superhero Strength Training", Difficulty: "Hard",
			Duration: 60, CaloriesEstimate: 450,
			Exercises: models.ExerciseList{{Name: "Bench Press", Sets: 4, Reps: 10}},
		},
	}, nil)

	w := performRequest(router, "GET", "/workouts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "1", first["id"])
	exercises := first["exercises"].([]interface{})
	assert.Len(t, exercises, 1)
	mockRepo.AssertExpectations(t)
}

func TestCreateWorkout(t *testing.T) {
	mockRepo, router := setupWorkoutController()

	mockRepo.On("Create", mock.AnythingOfType("*models.Workout")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Workout).ID = 6
		}).Return(nil)

	w := performRequest(router, "POST", "/workouts", map[string]interface{}{
		"title":             "Atlantean Swimming Circuit",
		"description":       "Aquaman-approved aquatic workout routine",
		"difficulty":        "Medium",
		"duration":          50,
		"calories_estimate": 550,
		"exercises": []map[string]interface{}{
			{"name": "Freestyle", "sets": 10, "distance": "100m"},
			{"name": "Sprint Intervals", "sets": 5, "duration": "2 min"},
			{"name": "Burpees", "sets": 3, "reps": 20},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "6", data["id"])

	// Mixed exercise shapes survive the round trip with absent fields omitted.
	exercises := data["exercises"].([]interface{})
	assert.Len(t, exercises, 3)
	first := exercises[0].(map[string]interface{})
	assert.Equal(t, "Freestyle", first["name"])
	assert.Equal(t, "100m", first["distance"])
	assert.NotContains(t, first, "reps")
	second := exercises[1].(map[string]interface{})
	assert.Equal(t, "2 min", second["duration"])
	third := exercises[2].(map[string]interface{})
	assert.Equal(t, float64(20), third["reps"])
	mockRepo.AssertExpectations(t)
}

func TestCreateWorkoutMissingTitle(t *testing.T) {
	mockRepo, router := setupWorkoutController()

	w := performRequest(router, "POST", "/workouts", map[string]interface{}{
		"difficulty": "Hard",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Contains(t, response["message"], "Invalid request data")
	mockRepo.AssertExpectations(t)
}

func TestGetWorkoutByID(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*mocks.MockWorkoutRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful retrieval",
			path: "/workouts/2",
			setupMock: func(m *mocks.MockWorkoutRepository) {
				m.On("FindByID", models.ID(2)).Return(&models.Workout{
					ID: 2, Title: "Speed Force Cardio",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Workout retrieved successfully",
		},
		{
			name: "not found",
			path: "/workouts/44",
			setupMock: func(m *mocks.MockWorkoutRepository) {
				m.On("FindByID", models.ID(44)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Workout not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, router := setupWorkoutController()
			tt.setupMock(mockRepo)

			w := performRequest(router, "GET", tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeResponse(t, w)
			assert.Contains(t, response["message"], tt.expectedMsg)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateWorkout(t *testing.T) {
	mockRepo, router := setupWorkoutController()

	mockRepo.On("FindByID", models.ID(2)).Return(&models.Workout{
		ID: 2, Title: "Speed Force Cardio", Difficulty: "Medium",
	}, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Workout")).Return(nil)

	w := performRequest(router, "PUT", "/workouts/2", map[string]interface{}{
		"title":             "Speed Force Cardio",
		"description":       "Updated description",
		"difficulty":        "Hard",
		"duration":          35,
		"calories_estimate": 400,
		"exercises":         []map[string]interface{}{},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Hard", data["difficulty"])
	mockRepo.AssertExpectations(t)
}

func TestDeleteWorkout(t *testing.T) {
	mockRepo, router := setupWorkoutController()

	mockRepo.On("FindByID", models.ID(2)).Return(&models.Workout{ID: 2}, nil)
	mockRepo.On("Delete", models.ID(2)).Return(nil)

	w := performRequest(router, "DELETE", "/workouts/2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}
