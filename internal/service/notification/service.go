package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/repository"
	"gpsphere-backend/internal/service/email"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error

	// NotifyUpcomingEvents creates one reminder per eligible (user, event)
	// pair for ongoing events inside the look-ahead window. Repeat runs are
	// no-ops for already-notified pairs.
	NotifyUpcomingEvents(ctx context.Context) (*domain.ReminderRunSummary, error)
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
	emailSvc  email.Service
	cfg       *config.Config
}

func NewService(
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	emailSvc email.Service,
	cfg *config.Config,
) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		emailSvc:  emailSvc,
		cfg:       cfg,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	ok, err := s.notifRepo.MarkAsRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if !ok {
		// Rows owned by other users are reported as missing, never as
		// forbidden, so notification ids cannot be probed.
		return domain.ErrNotFound
	}
	return nil
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) NotifyUpcomingEvents(ctx context.Context) (*domain.ReminderRunSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	loc := s.cfg.Location()
	now := time.Now().In(loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	to := now.Add(s.cfg.NotifyWindow)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)

	events, err := s.eventRepo.ListUpcoming(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: listing upcoming events: %v", domain.ErrStoreUnavailable, err)
	}

	summary := &domain.ReminderRunSummary{Events: len(events)}
	if len(events) == 0 {
		return summary, nil
	}

	roles := make([]domain.UserRole, 0, len(s.cfg.NotifyRoles))
	for _, r := range s.cfg.NotifyRoles {
		role := domain.UserRole(r)
		if role.IsValid() {
			roles = append(roles, role)
		}
	}

	recipients, err := s.userRepo.GetEligibleRecipients(ctx, roles)
	if err != nil {
		return nil, fmt.Errorf("%w: listing eligible recipients: %v", domain.ErrStoreUnavailable, err)
	}
	summary.Recipients = len(recipients)

	for _, event := range events {
		for _, user := range recipients {
			exists, err := s.notifRepo.ReminderExists(ctx, user.ID, event.ID, domain.NotifEvent)
			if err != nil {
				log.Printf("Failed reminder lookup for user %s, event %s: %v", user.ID, event.ID, err)
				summary.Failed++
				continue
			}
			if exists {
				summary.Skipped++
				continue
			}

			eventID := event.ID
			notif := &domain.Notification{
				ID:        uuid.New(),
				UserID:    user.ID,
				Type:      domain.NotifEvent,
				Title:     fmt.Sprintf("Upcoming Event: %s", event.Name),
				Message:   reminderMessage(event),
				RelatedID: &eventID,
			}

			created, err := s.notifRepo.CreateIfAbsent(ctx, notif)
			if err != nil {
				// Per-pair insert failures never abort the batch.
				log.Printf("Failed to create reminder for user %s, event %s: %v", user.ID, event.ID, err)
				summary.Failed++
				continue
			}
			if !created {
				// Lost the race to a concurrent run; the row exists.
				summary.Skipped++
				continue
			}
			summary.Created++

			// Synchronous on purpose: the email service degrades failures to
			// a captured result, and the operator CLI exits right after this
			// method returns.
			if s.emailSvc != nil && user.Email != "" {
				_ = s.emailSvc.SendEventReminderEmail(ctx, user.Email, user.Name,
					event.Name, event.EventDate.Format("Monday, 2 January 2006"), stringValue(event.Location))
			}
		}
	}

	return summary, nil
}

func reminderMessage(event domain.Event) string {
	msg := fmt.Sprintf("%s takes place on %s", event.Name, event.EventDate.Format("Monday, 2 January 2006"))
	if event.EventTime != nil && *event.EventTime != "" {
		msg = fmt.Sprintf("%s at %s", msg, *event.EventTime)
	}
	if event.Location != nil && *event.Location != "" {
		msg = fmt.Sprintf("%s, %s", msg, *event.Location)
	}
	return msg + "."
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
