package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventOngoing  EventStatus = "ongoing"
	EventFinished EventStatus = "finished"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventOngoing, EventFinished:
		return true
	}
	return false
}

type Event struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Name        string      `json:"event_name" db:"event_name"`
	Description *string     `json:"description,omitempty" db:"description"`
	EventDate   time.Time   `json:"event_date" db:"event_date"`
	EventTime   *string     `json:"event_time,omitempty" db:"event_time"`
	Location    *string     `json:"location,omitempty" db:"location"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedBy   *uuid.UUID  `json:"created_by,omitempty" db:"created_by"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

type CreateEventInput struct {
	Name        string    `json:"event_name" validate:"required,max=200"`
	Description *string   `json:"description"`
	EventDate   time.Time `json:"event_date" validate:"required"`
	EventTime   *string   `json:"event_time"`
	Location    *string   `json:"location" validate:"omitempty,max=150"`
}

// UpdateEventInput carries only the fields to change; nil means "leave as is".
type UpdateEventInput struct {
	Name        *string      `json:"event_name" validate:"omitempty,max=200"`
	Description *string      `json:"description"`
	EventDate   *time.Time   `json:"event_date"`
	EventTime   *string      `json:"event_time"`
	Location    *string      `json:"location" validate:"omitempty,max=150"`
	Status      *EventStatus `json:"status"`
}
