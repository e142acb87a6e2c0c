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

// TeamController needs the user repository as well: member_count is derived
// from users at serialization time, not stored on the team record.
type TeamController struct {
	repo  repository.TeamRepository
	users repository.UserRepository
}

func NewTeamController(repo repository.TeamRepository, users repository.UserRepository) *TeamController {
	return &TeamController{repo: repo, users: users}
}

type teamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GetAllTeams godoc
// @Summary Get all teams
// @Description Retrieve all teams with their member counts
// @Tags team
// @Produce json
// @Success 200 {object} map[string]interface{} "Teams retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve teams"
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve teams",
			"error":   err.Error(),
		})
		return
	}

	responses := make([]serializers.TeamResponse, len(teams))
	for i, team := range teams {
		memberCount, err := tc.users.CountByTeamID(team.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to retrieve teams",
				"error":   err.Error(),
			})
			return
		}
		responses[i] = serializers.SerializeTeam(team, memberCount)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Teams retrieved successfully",
		"data":    responses,
	})
}

// GetTeamByID godoc
// @Summary Get a team by ID
// @Description Retrieve team information by team ID
// @Tags team
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]interface{} "Team retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid team ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	team, err := tc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Team not found",
				"error":   "No team exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve team",
			"error":   err.Error(),
		})
		return
	}

	memberCount, err := tc.users.CountByTeamID(team.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve team",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Team retrieved successfully",
		"data":    serializers.SerializeTeam(*team, memberCount),
	})
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Create a team with the provided data
// @Tags team
// @Accept json
// @Produce json
// @Param team body teamRequest true "Team data"
// @Success 201 {object} map[string]interface{} "Team created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create team"
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	team := models.Team{Name: req.Name, Description: req.Description}
	if err := tc.repo.Create(&team); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create team",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Team created successfully",
		"data":    serializers.SerializeTeam(team, 0),
	})
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Replace team information
// @Tags team
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body teamRequest true "Team data"
// @Success 200 {object} map[string]interface{} "Team updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid team ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existing, err := tc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Team not found",
			"error":   "No team exists with the provided ID",
		})
		return
	}

	team := models.Team{
		ID:          existing.ID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   existing.CreatedAt,
	}
	if err := tc.repo.Update(&team); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update team",
			"error":   err.Error(),
		})
		return
	}

	memberCount, err := tc.users.CountByTeamID(team.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update team",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Team updated successfully",
		"data":    serializers.SerializeTeam(team, memberCount),
	})
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Delete team by ID. Users referencing the team keep their
// team_id; the reference is left dangling.
// @Tags team
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]interface{} "Team deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid team ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := tc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Team not found",
			"error":   "No team exists with the provided ID",
		})
		return
	}

	if err := tc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete team",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Team deleted successfully",
		"data":    nil,
	})
}
