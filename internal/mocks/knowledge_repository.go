package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gpsphere-backend/internal/domain"
)

type KnowledgeRepository struct {
	mock.Mock
}

func (m *KnowledgeRepository) Create(ctx context.Context, entry *domain.Knowledge) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *KnowledgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Knowledge), args.Error(1)
}

func (m *KnowledgeRepository) GetByCategory(ctx context.Context, category string) (*domain.Knowledge, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Knowledge), args.Error(1)
}

func (m *KnowledgeRepository) List(ctx context.Context) ([]domain.Knowledge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Knowledge), args.Error(1)
}

func (m *KnowledgeRepository) ListActive(ctx context.Context) ([]domain.Knowledge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Knowledge), args.Error(1)
}

func (m *KnowledgeRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateKnowledgeInput) (bool, error) {
	args := m.Called(ctx, id, input)
	return args.Bool(0), args.Error(1)
}

func (m *KnowledgeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *KnowledgeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	args := m.Called(ctx, id, active)
	return args.Bool(0), args.Error(1)
}
