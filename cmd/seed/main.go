package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"octofit/database"
	"octofit/internal/repository"
	"octofit/internal/seeder"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	command := "populate"
	args := []string{}
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "populate":
		populateCmd := flag.NewFlagSet("populate", flag.ExitOnError)
		seed := populateCmd.Int64("seed", 0, "Random seed for generated data (0 means time-based)")
		populateCmd.Parse(args)

		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		source := *seed
		if source == 0 {
			source = time.Now().UnixNano()
		}

		s := newSeeder(rand.New(rand.NewSource(source)))
		summary, err := s.Run()
		if err != nil {
			log.Fatalf("Error populating database: %v", err)
		}

		log.Println("=== Database Population Complete ===")
		log.Printf("Teams: %d", summary.Teams)
		log.Printf("Users: %d", summary.Users)
		log.Printf("Activities: %d", summary.Activities)
		log.Printf("Leaderboard Entries: %d", summary.Leaderboard)
		log.Printf("Workouts: %d", summary.Workouts)

	case "stats":
		database.ConnectDatabase()

		counts := []struct {
			name string
			fn   func() (int64, error)
		}{
			{"Teams", repository.NewTeamRepository(database.DB).Count},
			{"Users", repository.NewUserRepository(database.DB).Count},
			{"Activities", repository.NewActivityRepository(database.DB).Count},
			{"Leaderboard Entries", repository.NewLeaderboardRepository(database.DB).Count},
			{"Workouts", repository.NewWorkoutRepository(database.DB).Count},
		}

		log.Println("Database Statistics:")
		for _, c := range counts {
			n, err := c.fn()
			if err != nil {
				log.Fatalf("Error getting stats: %v", err)
			}
			log.Printf("  %s: %d", c.name, n)
		}

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", command)
		printHelp()
		os.Exit(1)
	}
}

func newSeeder(rng *rand.Rand) *seeder.Seeder {
	return seeder.New(
		repository.NewUserRepository(database.DB),
		repository.NewTeamRepository(database.DB),
		repository.NewActivityRepository(database.DB),
		repository.NewLeaderboardRepository(database.DB),
		repository.NewWorkoutRepository(database.DB),
		rng,
	)
}

func printHelp() {
	fmt.Println("Database utility tool for OctoFit Tracker")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool [COMMAND] [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  populate     Clear all data and repopulate the database with sample data")
	fmt.Println("               (default when no command is given). DESTRUCTIVE: all existing")
	fmt.Println("               records of every kind are deleted first, with no backup.")
	fmt.Println("               Options:")
	fmt.Println("                 --seed=N   Random seed for generated data (default: time-based)")
	fmt.Println("")
	fmt.Println("  stats        Show record counts per entity")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host")
	fmt.Println("  DB_PORT      Database port")
	fmt.Println("  DB_USER      Database user")
	fmt.Println("  DB_PASSWORD  Database password")
	fmt.Println("  DB_NAME      Database name")
	fmt.Println("  DB_SSLMODE   Database SSL mode")
}
