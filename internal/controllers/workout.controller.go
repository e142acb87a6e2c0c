package controllers

import (
	"errors"
	"net/http"

	"octofit/internal/models"
	"octofit/internal/repository"
	"octofit/internal/serializers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkoutController struct {
	repo repository.WorkoutRepository
}

func NewWorkoutController(repo repository.WorkoutRepository) *WorkoutController {
	return &WorkoutController{repo: repo}
}

type workoutRequest struct {
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description"`
	Difficulty       string              `json:"difficulty" binding:"required"`
	Duration         int                 `json:"duration" binding:"gte=0"`
	CaloriesEstimate int                 `json:"calories_estimate" binding:"gte=0"`
	Exercises        models.ExerciseList `json:"exercises"`
}

func (req *workoutRequest) toModel() *models.Workout {
	exercises := req.Exercises
	if exercises == nil {
		exercises = models.ExerciseList{}
	}
	return &models.Workout{
		Title:            req.Title,
		Description:      req.Description,
		Difficulty:       req.Difficulty,
		Duration:         req.Duration,
		CaloriesEstimate: req.CaloriesEstimate,
		Exercises:        exercises,
	}
}

// GetAllWorkouts godoc
// @Summary Get all workouts
// @Description Retrieve all workout routines
// @Tags workout
// @Produce json
// @Success 200 {object} map[string]interface{} "Workouts retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve workouts"
// @Router /workouts [get]
func (wc *WorkoutController) GetAllWorkouts(c *gin.Context) {
	workouts, err := wc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workouts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workouts retrieved successfully",
		"data":    serializers.SerializeWorkouts(workouts),
	})
}

// GetWorkoutByID godoc
// @Summary Get a workout by ID
// @Description Retrieve workout information by workout ID
// @Tags workout
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} map[string]interface{} "Workout retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid workout ID"
// @Failure 404 {object} map[string]interface{} "Workout not found"
// @Router /workouts/{id} [get]
func (wc *WorkoutController) GetWorkoutByID(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid workout ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	workout, err := wc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Workout not found",
				"error":   "No workout exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout retrieved successfully",
		"data":    serializers.SerializeWorkout(*workout),
	})
}

// CreateWorkout godoc
// @Summary Create a new workout
// @Description Create a workout with the provided data
// @Tags workout
// @Accept json
// @Produce json
// @Param workout body workoutRequest true "Workout data"
// @Success 201 {object} map[string]interface{} "Workout created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create workout"
// @Router /workouts [post]
func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	workout := req.toModel()
	if err := wc.repo.Create(workout); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout created successfully",
		"data":    serializers.SerializeWorkout(*workout),
	})
}

// UpdateWorkout godoc
// @Summary Update a workout
// @Description Replace workout information
// @Tags workout
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param workout body workoutRequest true "Workout data"
// @Success 200 {object} map[string]interface{} "Workout updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Workout not found"
// @Router /workouts/{id} [put]
func (wc *WorkoutController) UpdateWorkout(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid workout ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existing, err := wc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout not found",
			"error":   "No workout exists with the provided ID",
		})
		return
	}

	workout := req.toModel()
	workout.ID = existing.ID
	workout.CreatedAt = existing.CreatedAt

	if err := wc.repo.Update(workout); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout updated successfully",
		"data":    serializers.SerializeWorkout(*workout),
	})
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Description Delete workout by ID
// @Tags workout
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} map[string]interface{} "Workout deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid workout ID"
// @Failure 404 {object} map[string]interface{} "Workout not found"
// @Router /workouts/{id} [delete]
func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid workout ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := wc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout not found",
			"error":   "No workout exists with the provided ID",
		})
		return
	}

	if err := wc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout deleted successfully",
		"data":    nil,
	})
}
