package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	// NotifEvent classifies upcoming-event reminders. One reminder may exist
	// per (user_id, related_id, type) tuple; the store enforces this.
	NotifEvent NotificationType = "event"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	RelatedID *uuid.UUID       `json:"related_id,omitempty" db:"related_id"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// ReminderRunSummary reports the outcome of one notifier run. Failed counts
// per-pair insert errors, which do not fail the run as a whole.
type ReminderRunSummary struct {
	Events     int `json:"events"`
	Recipients int `json:"recipients"`
	Created    int `json:"created"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}
