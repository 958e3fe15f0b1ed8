// Command initdb creates the database schema and seed data. Safe to run
// more than once; every statement is idempotent.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Starting database initialization...")

	results, err := repository.Bootstrap(context.Background(), db, cfg.AdminEmail, cfg.AdminPassword)
	for _, r := range results {
		log.Println(r)
	}
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}

	log.Println("Database initialization completed")
}
