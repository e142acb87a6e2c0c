package database

import (
	"log"

	"octofit/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Activity{},
		&models.Leaderboard{},
		&models.Workout{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
