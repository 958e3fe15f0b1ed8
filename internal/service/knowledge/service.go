package knowledge

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/repository"
)

const (
	activeCacheKey = "chatbot:knowledge:active"
	activeCacheTTL = 10 * time.Minute
)

type Service interface {
	List(ctx context.Context) ([]domain.Knowledge, error)
	ListActive(ctx context.Context) ([]domain.Knowledge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error)
	Create(ctx context.Context, input domain.CreateKnowledgeInput) (*domain.Knowledge, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateKnowledgeInput) (*domain.Knowledge, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error)
}

type service struct {
	repo  repository.KnowledgeRepository
	redis *redis.Client
}

func NewService(repo repository.KnowledgeRepository, redis *redis.Client) Service {
	return &service{repo: repo, redis: redis}
}

func (s *service) List(ctx context.Context) ([]domain.Knowledge, error) {
	return s.repo.List(ctx)
}

func (s *service) ListActive(ctx context.Context) ([]domain.Knowledge, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, activeCacheKey).Bytes(); err == nil {
			var entries []domain.Knowledge
			if json.Unmarshal(cached, &entries) == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(entries); err == nil {
			_ = s.redis.Set(ctx, activeCacheKey, data, activeCacheTTL).Err()
		}
	}
	return entries, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (s *service) Create(ctx context.Context, input domain.CreateKnowledgeInput) (*domain.Knowledge, error) {
	existing, err := s.repo.GetByCategory(ctx, input.Category)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCategoryExists
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	entry := &domain.Knowledge{
		ID:          uuid.New(),
		Category:    input.Category,
		Keywords:    input.Keywords,
		Response:    input.Response,
		Suggestions: input.Suggestions,
		Priority:    input.Priority,
		IsActive:    isActive,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return entry, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateKnowledgeInput) (*domain.Knowledge, error) {
	if input.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	if input.Category != nil {
		existing, err := s.repo.GetByCategory(ctx, *input.Category)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrCategoryExists
		}
	}

	ok, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	s.invalidateCache(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	ok, err := s.repo.SetActive(ctx, id, !entry.IsActive)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	entry.IsActive = !entry.IsActive
	s.invalidateCache(ctx)
	return entry, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, activeCacheKey).Err()
	}
}
