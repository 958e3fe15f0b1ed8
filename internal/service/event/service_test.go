package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/mocks"
	"gpsphere-backend/internal/service/event"
)

func stringPtr(s string) *string { return &s }

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	input := domain.CreateEventInput{
		Name:      "Leadership Camp",
		EventDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventTime: stringPtr("09:00"),
		Location:  stringPtr("Main Hall"),
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.EventRepository)
		svc := event.NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.Event) bool {
			return e.Name == "Leadership Camp" &&
				e.Status == domain.EventOngoing &&
				e.CreatedBy != nil && *e.CreatedBy == adminID
		})).Return(nil).Once()

		created, err := svc.Create(ctx, adminID, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.EventOngoing, created.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repo Error", func(t *testing.T) {
		mockRepo := new(mocks.EventRepository)
		svc := event.NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("db error")).Once()

		created, err := svc.Create(ctx, adminID, input)

		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	t.Run("Partial Update", func(t *testing.T) {
		mockRepo := new(mocks.EventRepository)
		svc := event.NewService(mockRepo)

		input := domain.UpdateEventInput{Location: stringPtr("Auditorium")}
		updated := &domain.Event{ID: eventID, Name: "Gala", Location: stringPtr("Auditorium")}

		mockRepo.On("Update", ctx, eventID, input).Return(true, nil).Once()
		mockRepo.On("GetByID", ctx, eventID).Return(updated, nil).Once()

		result, err := svc.Update(ctx, eventID, input)

		assert.NoError(t, err)
		assert.Equal(t, "Auditorium", *result.Location)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.EventRepository)
		svc := event.NewService(mockRepo)

		input := domain.UpdateEventInput{Location: stringPtr("Auditorium")}
		mockRepo.On("Update", ctx, eventID, input).Return(false, nil).Once()

		result, err := svc.Update(ctx, eventID, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, result)
	})
}

func TestEventService_Finish(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	mockRepo := new(mocks.EventRepository)
	svc := event.NewService(mockRepo)

	finished := &domain.Event{ID: eventID, Name: "Gala", Status: domain.EventFinished}

	mockRepo.On("Update", ctx, eventID, mock.MatchedBy(func(input domain.UpdateEventInput) bool {
		return input.Status != nil && *input.Status == domain.EventFinished
	})).Return(true, nil).Once()
	mockRepo.On("GetByID", ctx, eventID).Return(finished, nil).Once()

	result, err := svc.Finish(ctx, eventID)

	assert.NoError(t, err)
	assert.Equal(t, domain.EventFinished, result.Status)
	mockRepo.AssertExpectations(t)
}

func TestEventService_GetByID(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(mocks.EventRepository)
		svc := event.NewService(mockRepo)

		mockRepo.On("GetByID", ctx, eventID).
			Return(&domain.Event{ID: eventID, Name: "Gala"}, nil).Once()

		result, err := svc.GetByID(ctx, eventID)

		assert.NoError(t, err)
		assert.Equal(t, "Gala", result.Name)
	})

	t.Run("Missing", func(t *testing.T) {
		mockRepo := new(mocks.EventRepository)
		svc := event.NewService(mockRepo)

		mockRepo.On("GetByID", ctx, eventID).Return(nil, nil).Once()

		result, err := svc.GetByID(ctx, eventID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, result)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.EventRepository)
		svc := event.NewService(mockRepo)

		mockRepo.On("Delete", ctx, eventID).Return(true, nil).Once()

		assert.NoError(t, svc.Delete(ctx, eventID))
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.EventRepository)
		svc := event.NewService(mockRepo)

		mockRepo.On("Delete", ctx, eventID).Return(false, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, eventID), domain.ErrNotFound)
	})
}
