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

// LeaderboardController exposes the stored snapshot. Entries are written by
// the seed pipeline and plain CRUD; nothing here recomputes totals or ranks.
type LeaderboardController struct {
	repo repository.LeaderboardRepository
}

func NewLeaderboardController(repo repository.LeaderboardRepository) *LeaderboardController {
	return &LeaderboardController{repo: repo}
}

type leaderboardRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	TeamID          string `json:"team_id" binding:"required"`
	TotalCalories   int    `json:"total_calories" binding:"gte=0"`
	TotalActivities int    `json:"total_activities" binding:"gte=0"`
	Rank            int    `json:"rank" binding:"required,gte=1"`
}

func (req *leaderboardRequest) toModel() (*models.Leaderboard, error) {
	userID, err := models.ParseID(req.UserID)
	if err != nil {
		return nil, err
	}
	teamID, err := models.ParseID(req.TeamID)
	if err != nil {
		return nil, err
	}
	return &models.Leaderboard{
		UserID:          userID,
		TeamID:          teamID,
		TotalCalories:   req.TotalCalories,
		TotalActivities: req.TotalActivities,
		Rank:            req.Rank,
	}, nil
}

// GetLeaderboard godoc
// @Summary Get the leaderboard
// @Description Retrieve all leaderboard entries ordered by rank
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Leaderboard retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve leaderboard"
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	entries, err := lc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve leaderboard",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Leaderboard retrieved successfully",
		"data":    serializers.SerializeLeaderboardEntries(entries),
	})
}

// GetLeaderboardEntryByID godoc
// @Summary Get a leaderboard entry by ID
// @Description Retrieve a single leaderboard entry
// @Tags leaderboard
// @Produce json
// @Param id path string true "Leaderboard entry ID"
// @Success 200 {object} map[string]interface{} "Leaderboard entry retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid leaderboard entry ID"
// @Failure 404 {object} map[string]interface{} "Leaderboard entry not found"
// @Router /leaderboard/{id} [get]
func (lc *LeaderboardController) GetLeaderboardEntryByID(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid leaderboard entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	entry, err := lc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Leaderboard entry not found",
				"error":   "No leaderboard entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve leaderboard entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Leaderboard entry retrieved successfully",
		"data":    serializers.SerializeLeaderboard(*entry),
	})
}

// CreateLeaderboardEntry godoc
// @Summary Create a leaderboard entry
// @Description Create a leaderboard entry with the provided data
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param entry body leaderboardRequest true "Leaderboard entry data"
// @Success 201 {object} map[string]interface{} "Leaderboard entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create leaderboard entry"
// @Router /leaderboard [post]
func (lc *LeaderboardController) CreateLeaderboardEntry(c *gin.Context) {
	var req leaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	entry, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid reference ID",
			"error":   err.Error(),
		})
		return
	}

	if err := lc.repo.Create(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create leaderboard entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Leaderboard entry created successfully",
		"data":    serializers.SerializeLeaderboard(*entry),
	})
}

// UpdateLeaderboardEntry godoc
// @Summary Update a leaderboard entry
// @Description Replace leaderboard entry information
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard entry ID"
// @Param entry body leaderboardRequest true "Leaderboard entry data"
// @Success 200 {object} map[string]interface{} "Leaderboard entry updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Leaderboard entry not found"
// @Router /leaderboard/{id} [put]
func (lc *LeaderboardController) UpdateLeaderboardEntry(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid leaderboard entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req leaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existing, err := lc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Leaderboard entry not found",
			"error":   "No leaderboard entry exists with the provided ID",
		})
		return
	}

	entry, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid reference ID",
			"error":   err.Error(),
		})
		return
	}
	entry.ID = existing.ID

	if err := lc.repo.Update(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update leaderboard entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Leaderboard entry updated successfully",
		"data":    serializers.SerializeLeaderboard(*entry),
	})
}

// DeleteLeaderboardEntry godoc
// @Summary Delete a leaderboard entry
// @Description Delete leaderboard entry by ID
// @Tags leaderboard
// @Produce json
// @Param id path string true "Leaderboard entry ID"
// @Success 200 {object} map[string]interface{} "Leaderboard entry deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid leaderboard entry ID"
// @Failure 404 {object} map[string]interface{} "Leaderboard entry not found"
// @Router /leaderboard/{id} [delete]
func (lc *LeaderboardController) DeleteLeaderboardEntry(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid leaderboard entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := lc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Leaderboard entry not found",
			"error":   "No leaderboard entry exists with the provided ID",
		})
		return
	}

	if err := lc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete leaderboard entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Leaderboard entry deleted successfully",
		"data":    nil,
	})
}
