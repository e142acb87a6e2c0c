package controllers

import (
	"errors"
	"net/http"
	"time"

	"octofit/internal/models"
	"octofit/internal/repository"
	"octofit/internal/serializers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActivityController struct {
	repo repository.ActivityRepository
}

func NewActivityController(repo repository.ActivityRepository) *ActivityController {
	return &ActivityController{repo: repo}
}

type activityRequest struct {
	UserID       string    `json:"user_id" binding:"required"`
	ActivityType string    `json:"activity_type" binding:"required"`
	Duration     int       `json:"duration" binding:"gte=0"`
	Calories     int       `json:"calories" binding:"gte=0"`
	Date         time.Time `json:"date" binding:"required"`
}

func (req *activityRequest) toModel() (*models.Activity, error) {
	userID, err := models.ParseID(req.UserID)
	if err != nil {
		return nil, err
	}
	return &models.Activity{
		UserID:       userID,
		ActivityType: req.ActivityType,
		Duration:     req.Duration,
		Calories:     req.Calories,
		Date:         req.Date,
	}, nil
}

// GetAllActivities godoc
// @Summary Get all activities
// @Description Retrieve all activities
// @Tags activity
// @Produce json
// @Success 200 {object} map[string]interface{} "Activities retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve activities"
// @Router /activities [get]
func (ac *ActivityController) GetAllActivities(c *gin.Context) {
	activities, err := ac.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"data":    serializers.SerializeActivities(activities),
	})
}

// GetActivitiesByUserID godoc
// @Summary Get all activities for a user
// @Description Retrieve all activities associated with a specific user ID
// @Tags activity
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]interface{} "Activities retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve activities"
// @Router /activities/user/{user_id} [get]
func (ac *ActivityController) GetActivitiesByUserID(c *gin.Context) {
	userID, err := models.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	activities, err := ac.repo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"data":    serializers.SerializeActivities(activities),
	})
}

// GetActivityByID godoc
// @Summary Get an activity by ID
// @Description Retrieve activity information by activity ID
// @Tags activity
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid activity ID"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id} [get]
func (ac *ActivityController) GetActivityByID(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid activity ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	activity, err := ac.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Activity not found",
				"error":   "No activity exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity retrieved successfully",
		"data":    serializers.SerializeActivity(*activity),
	})
}

// CreateActivity godoc
// @Summary Create a new activity
// @Description Create an activity with the provided data
// @Tags activity
// @Accept json
// @Produce json
// @Param activity body activityRequest true "Activity data"
// @Success 201 {object} map[string]interface{} "Activity created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create activity"
// @Router /activities [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	activity, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.repo.Create(activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Activity created successfully",
		"data":    serializers.SerializeActivity(*activity),
	})
}

// UpdateActivity godoc
// @Summary Update an activity
// @Description Replace activity information
// @Tags activity
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param activity body activityRequest true "Activity data"
// @Success 200 {object} map[string]interface{} "Activity updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id} [put]
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid activity ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existing, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Activity not found",
			"error":   "No activity exists with the provided ID",
		})
		return
	}

	activity, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   err.Error(),
		})
		return
	}
	activity.ID = existing.ID
	activity.CreatedAt = existing.CreatedAt

	if err := ac.repo.Update(activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity updated successfully",
		"data":    serializers.SerializeActivity(*activity),
	})
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Description Delete activity by ID. The leaderboard snapshot is not
// recomputed.
// @Tags activity
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid activity ID"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id} [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid activity ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := ac.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Activity not found",
			"error":   "No activity exists with the provided ID",
		})
		return
	}

	if err := ac.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity deleted successfully",
		"data":    nil,
	})
}
