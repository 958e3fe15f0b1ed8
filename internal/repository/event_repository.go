package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gpsphere-backend/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, status *domain.EventStatus, params domain.PaginationParams) ([]domain.Event, int64, error)
	ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateEventInput) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, event_name, description, event_date, event_time, location, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		event.ID, event.Name, event.Description, event.EventDate,
		event.EventTime, event.Location, event.Status, event.CreatedBy,
	).Scan(&event.CreatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT * FROM events WHERE id = $1`

	err := r.db.GetContext(ctx, &event, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, status *domain.EventStatus, params domain.PaginationParams) ([]domain.Event, int64, error) {
	params.Validate()

	var total int64
	var events []domain.Event

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM events WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM events
			WHERE status = $1
			ORDER BY event_date ASC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &events, query, *status, params.PageSize, params.Offset())
		return events, total, err
	}

	countQuery := `SELECT COUNT(*) FROM events`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM events
		ORDER BY event_date ASC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &events, query, params.PageSize, params.Offset())
	return events, total, err
}

// ListUpcoming selects ongoing events whose date falls inside [from, to],
// both bounds inclusive. Callers pass date-truncated bounds computed in a
// single timezone.
func (r *eventRepository) ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	var events []domain.Event
	query := `
		SELECT * FROM events
		WHERE status = 'ongoing' AND event_date >= $1 AND event_date <= $2
		ORDER BY event_date ASC`
	err := r.db.SelectContext(ctx, &events, query, from, to)
	return events, err
}

// Update applies only the present fields of input as a parameterized SET
// list; field values never enter the SQL text.
func (r *eventRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateEventInput) (bool, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if input.Name != nil {
		addSet("event_name", *input.Name)
	}
	if input.Description != nil {
		addSet("description", *input.Description)
	}
	if input.EventDate != nil {
		addSet("event_date", *input.EventDate)
	}
	if input.EventTime != nil {
		addSet("event_time", *input.EventTime)
	}
	if input.Location != nil {
		addSet("location", *input.Location)
	}
	if input.Status != nil {
		addSet("status", *input.Status)
	}

	if len(sets) == 0 {
		return false, domain.ErrNoFieldsToUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM events WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}
