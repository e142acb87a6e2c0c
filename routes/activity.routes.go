package routes

import (
	"octofit/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(router *gin.Engine, activityController *controllers.ActivityController) {
	activityRoutes := router.Group("/activities")
	{
		activityRoutes.GET("/", activityController.GetAllActivities)
		activityRoutes.POST("/", activityController.CreateActivity)
		activityRoutes.GET("/user/:user_id", activityController.GetActivitiesByUserID)
		activityRoutes.GET("/:id", activityController.GetActivityByID)
		activityRoutes.PUT("/:id", activityController.UpdateActivity)
		activityRoutes.DELETE("/:id", activityController.DeleteActivity)
	}
}
