package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gpsphere-backend/internal/domain"
)

type KnowledgeRepository interface {
	Create(ctx context.Context, entry *domain.Knowledge) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error)
	GetByCategory(ctx context.Context, category string) (*domain.Knowledge, error)
	List(ctx context.Context) ([]domain.Knowledge, error)
	ListActive(ctx context.Context) ([]domain.Knowledge, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateKnowledgeInput) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error)
}

type knowledgeRepository struct {
	db *sqlx.DB
}

func NewKnowledgeRepository(db *sqlx.DB) KnowledgeRepository {
	return &knowledgeRepository{db: db}
}

func (r *knowledgeRepository) Create(ctx context.Context, entry *domain.Knowledge) error {
	query := `
		INSERT INTO chatbot_knowledge (id, category, keywords, response, suggestions, priority, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		entry.ID, entry.Category, entry.Keywords, entry.Response,
		entry.Suggestions, entry.Priority, entry.IsActive,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
}

func (r *knowledgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error) {
	var entry domain.Knowledge
	query := `SELECT * FROM chatbot_knowledge WHERE id = $1`

	err := r.db.GetContext(ctx, &entry, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *knowledgeRepository) GetByCategory(ctx context.Context, category string) (*domain.Knowledge, error) {
	var entry domain.Knowledge
	query := `SELECT * FROM chatbot_knowledge WHERE category = $1`

	err := r.db.GetContext(ctx, &entry, query, category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *knowledgeRepository) List(ctx context.Context) ([]domain.Knowledge, error) {
	var entries []domain.Knowledge
	query := `SELECT * FROM chatbot_knowledge ORDER BY priority DESC, category ASC`
	err := r.db.SelectContext(ctx, &entries, query)
	return entries, err
}

func (r *knowledgeRepository) ListActive(ctx context.Context) ([]domain.Knowledge, error) {
	var entries []domain.Knowledge
	query := `
		SELECT * FROM chatbot_knowledge
		WHERE is_active = true
		ORDER BY priority DESC, category ASC`
	err := r.db.SelectContext(ctx, &entries, query)
	return entries, err
}

// Update applies only the present fields of input. The SET list is assembled
// from fixed column names with positional placeholders; values are always
// bound parameters.
func (r *knowledgeRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateKnowledgeInput) (bool, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if input.Category != nil {
		addSet("category", *input.Category)
	}
	if input.Keywords != nil {
		addSet("keywords", *input.Keywords)
	}
	if input.Response != nil {
		addSet("response", *input.Response)
	}
	if input.Suggestions != nil {
		addSet("suggestions", *input.Suggestions)
	}
	if input.Priority != nil {
		addSet("priority", *input.Priority)
	}
	if input.IsActive != nil {
		addSet("is_active", *input.IsActive)
	}

	if len(sets) == 0 {
		return false, domain.ErrNoFieldsToUpdate
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE chatbot_knowledge SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *knowledgeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM chatbot_knowledge WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *knowledgeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	query := `UPDATE chatbot_knowledge SET is_active = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, active)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}
