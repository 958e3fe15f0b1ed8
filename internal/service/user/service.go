package user

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/repository"
	"gpsphere-backend/internal/service/email"
)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListByStatus(ctx context.Context, status domain.UserStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error)
}

type service struct {
	userRepo    repository.UserRepository
	emailSvc    email.Service
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(userRepo repository.UserRepository, emailSvc email.Service, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *service) ListByStatus(ctx context.Context, status domain.UserStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error) {
	users, total, err := s.userRepo.ListByStatus(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.User]{}, err
	}
	return domain.NewPaginatedResponse(users, params.Page, params.PageSize, total), nil
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	ok, err := s.userRepo.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Missing or already approved; distinguish for the caller.
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrNotFound
		}
		return user, nil
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.emailSvc != nil && user != nil {
		go func(toEmail, name string) {
			_ = s.emailSvc.SendApprovalEmail(context.Background(), toEmail, name)
		}(user.Email, user.Name)
	}

	return user, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *service) UploadProfilePicture(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	if s.minioClient == nil {
		return "", fmt.Errorf("object storage not configured")
	}

	storagePath := fmt.Sprintf("avatars/%s/%s-%s", time.Now().Format("2006/01"), userID, fileName)

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}

	url := s.publicURL(storagePath)
	if err := s.userRepo.SetProfilePicture(ctx, userID, url); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return "", err
	}

	return url, nil
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, storagePath)
}
