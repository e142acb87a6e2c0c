package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"octofit/internal/controllers"
	"octofit/internal/models"
	"octofit/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
	router := gin.New()
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func setupUserController() (*controllers.UserController, *mocks.MockUserRepository, *gin.Engine) {
	mockRepo := new(mocks.MockUserRepository)
	controller := controllers.NewUserController(mockRepo)
	router := setupTestRouter()
	router.GET("/users", controller.GetAllUsers)
	router.POST("/users", controller.CreateUser)
	router.GET("/users/:id", controller.GetUserByID)
	router.PUT("/users/:id", controller.UpdateUser)
	router.DELETE("/users/:id", controller.DeleteUser)
	return controller, mockRepo, router
}

func TestGetAllUsers(t *testing.T) {
	_, mockRepo, router := setupUserController()

	teamID := models.ID(1)
	mockRepo.On("FindAll").Return([]models.User{
		{ID: 1, Name: "Iron Man", Email: "tony.stark@marvel.com", TeamID: &teamID},
		{ID: 2, Name: "Superman", Email: "clark.kent@dc.com"},
	}, nil)

	w := performRequest(router, "GET", "/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "1", first["id"])
	assert.Equal(t, "1", first["team_id"])
	assert.Equal(t, "tony.stark@marvel.com", first["email"])

	second := data[1].(map[string]interface{})
	assert.Nil(t, second["team_id"])

	mockRepo.AssertExpectations(t)
}

func TestGetUserByID(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful retrieval",
			path: "/users/5",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", models.ID(5)).Return(&models.User{
					ID: 5, Name: "Thor", Email: "thor.odinson@marvel.com",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User retrieved successfully",
		},
		{
			name:           "invalid id",
			path:           "/users/abc",
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid user ID",
		},
		{
			name: "not found",
			path: "/users/99",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", models.ID(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name: "store unavailable",
			path: "/users/5",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", models.ID(5)).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to retrieve user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockRepo, router := setupUserController()
			tt.setupMock(mockRepo)

			w := performRequest(router, "GET", tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeResponse(t, w)
			assert.Contains(t, response["message"], tt.expectedMsg)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"name":    "Batman",
				"email":   "bruce.wayne@dc.com",
				"team_id": "2",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByEmail", "bruce.wayne@dc.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.AnythingOfType("*models.User")).
					Run(func(args mock.Arguments) {
						args.Get(0).(*models.User).ID = 7
					}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User created successfully",
		},
		{
			name: "missing email",
			requestBody: map[string]interface{}{
				"name": "Batman",
			},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "malformed email",
			requestBody: map[string]interface{}{
				"name":  "Batman",
				"email": "not-an-email",
			},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "client supplied id rejected",
			requestBody: map[string]interface{}{
				"id":    "42",
				"name":  "Batman",
				"email": "bruce.wayne@dc.com",
			},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "duplicate email",
			requestBody: map[string]interface{}{
				"name":  "Bruce Wayne",
				"email": "bruce.wayne@dc.com",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByEmail", "bruce.wayne@dc.com").Return(&models.User{
					ID: 3, Email: "bruce.wayne@dc.com",
				}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Email already registered",
		},
		{
			name: "repository error",
			requestBody: map[string]interface{}{
				"name":  "Batman",
				"email": "bruce.wayne@dc.com",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByEmail", "bruce.wayne@dc.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.AnythingOfType("*models.User")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockRepo, router := setupUserController()
			tt.setupMock(mockRepo)

			w := performRequest(router, "POST", "/users", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeResponse(t, w)
			assert.Contains(t, response["message"], tt.expectedMsg)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateUserRoundTrip(t *testing.T) {
	_, mockRepo, router := setupUserController()
	mockRepo.On("FindByEmail", "diana.prince@dc.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.User).ID = 11
		}).Return(nil)

	w := performRequest(router, "POST", "/users", map[string]interface{}{
		"name":    "Wonder Woman",
		"email":   "diana.prince@dc.com",
		"team_id": "2",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "11", data["id"])
	assert.Equal(t, "Wonder Woman", data["name"])
	assert.Equal(t, "diana.prince@dc.com", data["email"])
	assert.Equal(t, "2", data["team_id"])
	assert.NotEmpty(t, data["created_at"])
}

func TestUpdateUser(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful update",
			path: "/users/5",
			requestBody: map[string]interface{}{
				"name":  "Thor Odinson",
				"email": "thor.odinson@marvel.com",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", models.ID(5)).Return(&models.User{
					ID: 5, Name: "Thor", Email: "thor.odinson@marvel.com",
				}, nil)
				m.On("FindByEmail", "thor.odinson@marvel.com").Return(&models.User{
					ID: 5, Email: "thor.odinson@marvel.com",
				}, nil)
				m.On("Update", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User updated successfully",
		},
		{
			name: "not found",
			path: "/users/99",
			requestBody: map[string]interface{}{
				"name":  "Nobody",
				"email": "nobody@example.com",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", models.ID(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name: "email taken by another user",
			path: "/users/5",
			requestBody: map[string]interface{}{
				"name":  "Thor",
				"email": "tony.stark@marvel.com",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", models.ID(5)).Return(&models.User{
					ID: 5, Name: "Thor", Email: "thor.odinson@marvel.com",
				}, nil)
				m.On("FindByEmail", "tony.stark@marvel.com").Return(&models.User{
					ID: 1, Email: "tony.stark@marvel.com",
				}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockRepo, router := setupUserController()
			tt.setupMock(mockRepo)

			w := performRequest(router, "PUT", tt.path, tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeResponse(t, w)
			assert.Contains(t, response["message"], tt.expectedMsg)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful deletion",
			path: "/users/5",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", models.ID(5)).Return(&models.User{ID: 5}, nil)
				m.On("Delete", models.ID(5)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User deleted successfully",
		},
		{
			name: "not found",
			path: "/users/99",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", models.ID(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockRepo, router := setupUserController()
			tt.setupMock(mockRepo)

			w := performRequest(router, "DELETE", tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeResponse(t, w)
			assert.Contains(t, response["message"], tt.expectedMsg)
			mockRepo.AssertExpectations(t)
		})
	}
}
