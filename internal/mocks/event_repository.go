package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gpsphere-backend/internal/domain"
)

type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *EventRepository) List(ctx context.Context, status *domain.EventStatus, params domain.PaginationParams) ([]domain.Event, int64, error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).([]domain.Event), args.Get(1).(int64), args.Error(2)
}

func (m *EventRepository) ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *EventRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateEventInput) (bool, error) {
	args := m.Called(ctx, id, input)
	return args.Bool(0), args.Error(1)
}

func (m *EventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
