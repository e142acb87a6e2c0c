package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"octofit/database"
	"octofit/internal/controllers"
	"octofit/internal/middleware"
	"octofit/internal/repository"
	"octofit/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	teamRepo := repository.NewTeamRepository(database.DB)
	activityRepo := repository.NewActivityRepository(database.DB)
	leaderboardRepo := repository.NewLeaderboardRepository(database.DB)
	workoutRepo := repository.NewWorkoutRepository(database.DB)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	teamController := controllers.NewTeamController(teamRepo, userRepo)
	activityController := controllers.NewActivityController(activityRepo)
	leaderboardController := controllers.NewLeaderboardController(leaderboardRepo)
	workoutController := controllers.NewWorkoutController(workoutRepo)

	gin.SetMode(gin.ReleaseMode)
	// Server-assigned fields (id, timestamps) must not be client-supplied;
	// unknown body fields fail binding with a 400.
	gin.EnableJsonDecoderDisallowUnknownFields()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "OctoFit Tracker API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterTeamRoutes(router, teamController)
	routes.RegisterActivityRoutes(router, activityController)
	routes.RegisterLeaderboardRoutes(router, leaderboardController)
	routes.RegisterWorkoutRoutes(router, workoutController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
