package knowledge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/mocks"
	"gpsphere-backend/internal/service/knowledge"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }
func boolPtr(b bool) *bool       { return &b }

func TestKnowledgeService_Create(t *testing.T) {
	ctx := context.Background()

	input := domain.CreateKnowledgeInput{
		Category: "membership",
		Keywords: "join,register,sign up",
		Response: "You can register through the app and wait for admin approval.",
		Priority: 5,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		mockRepo.On("GetByCategory", ctx, "membership").Return(nil, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(k *domain.Knowledge) bool {
			return k.Category == "membership" && k.Priority == 5 && k.IsActive
		})).Return(nil).Once()

		entry, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, entry)
		assert.True(t, entry.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Inactive On Request", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		inactive := input
		inactive.IsActive = boolPtr(false)

		mockRepo.On("GetByCategory", ctx, "membership").Return(nil, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(k *domain.Knowledge) bool {
			return !k.IsActive
		})).Return(nil).Once()

		entry, err := svc.Create(ctx, inactive)

		assert.NoError(t, err)
		assert.False(t, entry.IsActive)
	})

	t.Run("Duplicate Category", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		mockRepo.On("GetByCategory", ctx, "membership").
			Return(&domain.Knowledge{ID: uuid.New(), Category: "membership"}, nil).Once()

		entry, err := svc.Create(ctx, input)

		assert.ErrorIs(t, err, domain.ErrCategoryExists)
		assert.Nil(t, entry)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestKnowledgeService_Update(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	t.Run("Partial Update", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		input := domain.UpdateKnowledgeInput{
			Response: stringPtr("Updated answer."),
			Priority: intPtr(9),
		}
		updated := &domain.Knowledge{ID: entryID, Category: "membership", Response: "Updated answer.", Priority: 9}

		mockRepo.On("Update", ctx, entryID, input).Return(true, nil).Once()
		mockRepo.On("GetByID", ctx, entryID).Return(updated, nil).Once()

		entry, err := svc.Update(ctx, entryID, input)

		assert.NoError(t, err)
		assert.Equal(t, "Updated answer.", entry.Response)
		assert.Equal(t, 9, entry.Priority)
		mockRepo.AssertExpectations(t)
	})

	t.Run("No Fields", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		entry, err := svc.Update(ctx, entryID, domain.UpdateKnowledgeInput{})

		assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
		assert.Nil(t, entry)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Category Taken By Other Entry", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		input := domain.UpdateKnowledgeInput{Category: stringPtr("events")}
		mockRepo.On("GetByCategory", ctx, "events").
			Return(&domain.Knowledge{ID: uuid.New(), Category: "events"}, nil).Once()

		entry, err := svc.Update(ctx, entryID, input)

		assert.ErrorIs(t, err, domain.ErrCategoryExists)
		assert.Nil(t, entry)
	})

	t.Run("Renaming To Own Category Allowed", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		input := domain.UpdateKnowledgeInput{Category: stringPtr("membership")}
		current := &domain.Knowledge{ID: entryID, Category: "membership"}

		mockRepo.On("GetByCategory", ctx, "membership").Return(current, nil).Once()
		mockRepo.On("Update", ctx, entryID, input).Return(true, nil).Once()
		mockRepo.On("GetByID", ctx, entryID).Return(current, nil).Once()

		entry, err := svc.Update(ctx, entryID, input)

		assert.NoError(t, err)
		assert.NotNil(t, entry)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		input := domain.UpdateKnowledgeInput{Response: stringPtr("x")}
		mockRepo.On("Update", ctx, entryID, input).Return(false, nil).Once()

		entry, err := svc.Update(ctx, entryID, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, entry)
	})
}

func TestKnowledgeService_Delete(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		mockRepo.On("Delete", ctx, entryID).Return(true, nil).Once()

		assert.NoError(t, svc.Delete(ctx, entryID))
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		mockRepo.On("Delete", ctx, entryID).Return(false, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, entryID), domain.ErrNotFound)
	})
}

func TestKnowledgeService_ToggleActive(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	t.Run("Deactivates Active Entry", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		mockRepo.On("GetByID", ctx, entryID).
			Return(&domain.Knowledge{ID: entryID, IsActive: true}, nil).Once()
		mockRepo.On("SetActive", ctx, entryID, false).Return(true, nil).Once()

		entry, err := svc.ToggleActive(ctx, entryID)

		assert.NoError(t, err)
		assert.False(t, entry.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		mockRepo.On("GetByID", ctx, entryID).Return(nil, nil).Once()

		entry, err := svc.ToggleActive(ctx, entryID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, entry)
	})
}

func TestKnowledgeService_GetByID(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		mockRepo.On("GetByID", ctx, entryID).
			Return(&domain.Knowledge{ID: entryID, Category: "faq"}, nil).Once()

		entry, err := svc.GetByID(ctx, entryID)

		assert.NoError(t, err)
		assert.Equal(t, "faq", entry.Category)
	})

	t.Run("Missing", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		mockRepo.On("GetByID", ctx, entryID).Return(nil, nil).Once()

		entry, err := svc.GetByID(ctx, entryID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, entry)
	})

	t.Run("Repo Error", func(t *testing.T) {
		mockRepo := new(mocks.KnowledgeRepository)
		svc := knowledge.NewService(mockRepo, nil)

		mockRepo.On("GetByID", ctx, entryID).Return(nil, errors.New("db error")).Once()

		entry, err := svc.GetByID(ctx, entryID)

		assert.Error(t, err)
		assert.Nil(t, entry)
	})
}
