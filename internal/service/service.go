package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/repository"
	"gpsphere-backend/internal/service/auth"
	"gpsphere-backend/internal/service/email"
	"gpsphere-backend/internal/service/event"
	"gpsphere-backend/internal/service/knowledge"
	"gpsphere-backend/internal/service/notification"
	"gpsphere-backend/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Event        event.Service
	Notification notification.Service
	Knowledge    knowledge.Service
	Email        email.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, emailService, cfg)
	userService := user.NewService(repos.User, emailService, minioClient, cfg)
	eventService := event.NewService(repos.Event)
	notificationService := notification.NewService(repos.Notification, repos.User, repos.Event, emailService, cfg)
	knowledgeService := knowledge.NewService(repos.Knowledge, redisClient)

	return &Services{
		Auth:         authService,
		User:         userService,
		Event:        eventService,
		Notification: notificationService,
		Knowledge:    knowledgeService,
		Email:        emailService,
	}
}
