// Command notify runs the upcoming-event reminder batch once and exits.
// It is the operator-triggered equivalent of the admin notify-upcoming
// endpoint and shares its exact semantics.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/repository"
	"gpsphere-backend/internal/service/email"
	"gpsphere-backend/internal/service/notification"
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

	repos := repository.NewRepositories(db)
	emailService := email.NewService(cfg)
	notifier := notification.NewService(repos.Notification, repos.User, repos.Event, emailService, cfg)

	log.Println("Starting notification process for upcoming events...")

	summary, err := notifier.NotifyUpcomingEvents(context.Background())
	if err != nil {
		log.Fatalf("Notification process failed: %v", err)
	}

	log.Printf("Notification process completed: %d events, %d recipients, %d created, %d skipped, %d failed",
		summary.Events, summary.Recipients, summary.Created, summary.Skipped, summary.Failed)
}
