package routes

import (
	"octofit/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterLeaderboardRoutes(router *gin.Engine, leaderboardController *controllers.LeaderboardController) {
	leaderboardRoutes := router.Group("/leaderboard")
	{
		leaderboardRoutes.GET("/", leaderboardController.GetLeaderboard)
		leaderboardRoutes.POST("/", leaderboardController.CreateLeaderboardEntry)
		leaderboardRoutes.GET("/:id", leaderboardController.GetLeaderboardEntryByID)
		leaderboardRoutes.PUT("/:id", leaderboardController.UpdateLeaderboardEntry)
		leaderboardRoutes.DELETE("/:id", leaderboardController.DeleteLeaderboardEntry)
	}
}
