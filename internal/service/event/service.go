package event

import (
	"context"

	"github.com/google/uuid"

	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/repository"
)

type Service interface {
	Create(ctx context.Context, createdBy uuid.UUID, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, status *domain.EventStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateEventInput) (*domain.Event, error)
	Finish(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	eventRepo repository.EventRepository
}

func NewService(eventRepo repository.EventRepository) Service {
	return &service{eventRepo: eventRepo}
}

func (s *service) Create(ctx context.Context, createdBy uuid.UUID, input domain.CreateEventInput) (*domain.Event, error) {
	event := &domain.Event{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		EventDate:   input.EventDate,
		EventTime:   input.EventTime,
		Location:    input.Location,
		Status:      domain.EventOngoing,
		CreatedBy:   &createdBy,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (s *service) List(ctx context.Context, status *domain.EventStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error) {
	events, total, err := s.eventRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Event]{}, err
	}
	return domain.NewPaginatedResponse(events, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateEventInput) (*domain.Event, error) {
	ok, err := s.eventRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *service) Finish(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	finished := domain.EventFinished
	return s.Update(ctx, id, domain.UpdateEventInput{Status: &finished})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
