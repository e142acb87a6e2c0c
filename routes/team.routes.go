package routes

import (
	"octofit/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTeamRoutes(router *gin.Engine, teamController *controllers.TeamController) {
	teamRoutes := router.Group("/teams")
	{
		teamRoutes.GET("/", teamController.GetAllTeams)
		teamRoutes.POST("/", teamController.CreateTeam)
		teamRoutes.GET("/:id", teamController.GetTeamByID)
		teamRoutes.PUT("/:id", teamController.UpdateTeam)
		teamRoutes.DELETE("/:id", teamController.DeleteTeam)
	}
}
