package routes

import (
	"octofit/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutRoutes(router *gin.Engine, workoutController *controllers.WorkoutController) {
	workoutRoutes := router.Group("/workouts")
	{
		workoutRoutes.GET("/", workoutController.GetAllWorkouts)
		workoutRoutes.POST("/", workoutController.CreateWorkout)
		workoutRoutes.GET("/:id", workoutController.GetWorkoutByID)
		workoutRoutes.PUT("/:id", workoutController.UpdateWorkout)
		workoutRoutes.DELETE("/:id", workoutController.DeleteWorkout)
	}
}
