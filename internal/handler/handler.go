package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/middleware"
	"gpsphere-backend/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Event        *EventHandler
	Notification *NotificationHandler
	Knowledge    *KnowledgeHandler
	Init         *InitHandler
}

func NewHandlers(services *service.Services, db *sqlx.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Event:        NewEventHandler(services.Event),
		Notification: NewNotificationHandler(services.Notification),
		Knowledge:    NewKnowledgeHandler(services.Knowledge),
		Init:         NewInitHandler(db, cfg),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if page, err := strconv.Atoi(c.Query("page", "1")); err == nil && page > 0 {
		params.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("page_size", "20")); err == nil && pageSize > 0 && pageSize <= 100 {
		params.PageSize = pageSize
	}
	return params
}

// mapDomainError converts service-level sentinel errors to client-facing
// status errors; anything unmatched propagates as an internal error.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return middleware.NotFound(err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		return middleware.StoreUnavailable(err.Error())
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrCategoryExists):
		return middleware.Conflict(err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidTAC):
		return middleware.Unauthorized(err.Error())
	case errors.Is(err, domain.ErrAccountPending):
		return middleware.Forbidden(err.Error())
	case errors.Is(err, domain.ErrInvalidResetCode), errors.Is(err, domain.ErrNoFieldsToUpdate):
		return middleware.BadRequest(err.Error())
	default:
		return err
	}
}
