package domain

import (
	"time"

	"github.com/google/uuid"
)

// Knowledge is one chatbot knowledge-base entry. Category is unique; keywords
// is a comma-separated match list and suggestions a comma-separated list of
// follow-up prompts.
type Knowledge struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Category    string    `json:"category" db:"category"`
	Keywords    string    `json:"keywords" db:"keywords"`
	Response    string    `json:"response" db:"response"`
	Suggestions string    `json:"suggestions" db:"suggestions"`
	Priority    int       `json:"priority" db:"priority"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateKnowledgeInput struct {
	Category    string `json:"category" validate:"required,max=100"`
	Keywords    string `json:"keywords" validate:"required"`
	Response    string `json:"response" validate:"required"`
	Suggestions string `json:"suggestions"`
	Priority    int    `json:"priority"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateKnowledgeInput holds optional fields for partial updates; only the
// present (non-nil) fields are applied.
type UpdateKnowledgeInput struct {
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Keywords    *string `json:"keywords"`
	Response    *string `json:"response"`
	Suggestions *string `json:"suggestions"`
	Priority    *int    `json:"priority"`
	IsActive    *bool   `json:"is_active"`
}

func (i UpdateKnowledgeInput) IsEmpty() bool {
	return i.Category == nil && i.Keywords == nil && i.Response == nil &&
		i.Suggestions == nil && i.Priority == nil && i.IsActive == nil
}
