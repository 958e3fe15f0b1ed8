package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gpsphere-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByStatus(ctx context.Context, status domain.UserStatus, params domain.PaginationParams) ([]domain.User, int64, error)
	GetEligibleRecipients(ctx context.Context, roles []domain.UserRole) ([]domain.User, error)
	Approve(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SetTAC(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error
	ClearTAC(ctx context.Context, id uuid.UUID) error
	SetResetCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error
	ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetProfilePicture(ctx context.Context, id uuid.UUID, url string) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Status,
	).Scan(&user.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	err := r.db.GetContext(ctx, &exists, query, email)
	return exists, err
}

func (r *userRepository) ListByStatus(ctx context.Context, status domain.UserStatus, params domain.PaginationParams) ([]domain.User, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM users WHERE status = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, status); err != nil {
		return nil, 0, err
	}

	var users []domain.User
	query := `
		SELECT * FROM users
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &users, query, status, params.PageSize, params.Offset())
	return users, total, err
}

// GetEligibleRecipients returns approved users whose role is in the given
// set, ordered for deterministic notifier runs.
func (r *userRepository) GetEligibleRecipients(ctx context.Context, roles []domain.UserRole) ([]domain.User, error) {
	if len(roles) == 0 {
		return []domain.User{}, nil
	}

	roleStrings := make([]string, len(roles))
	for i, role := range roles {
		roleStrings[i] = string(role)
	}

	var users []domain.User
	query := `
		SELECT * FROM users
		WHERE status = 'approved' AND role = ANY($1)
		ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &users, query, pq.Array(roleStrings))
	return users, err
}

func (r *userRepository) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE users SET status = 'approved' WHERE id = $1 AND status = 'pending'`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *userRepository) SetTAC(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error {
	query := `UPDATE users SET tac_code = $2, tac_expiry = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, code, expiry)
	return err
}

func (r *userRepository) ClearTAC(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET tac_code = NULL, tac_expiry = NULL WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *userRepository) SetResetCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error {
	query := `UPDATE users SET reset_code = $2, reset_expiry = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, code, expiry)
	return err
}

func (r *userRepository) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, reset_code = NULL, reset_expiry = NULL WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, passwordHash)
	return err
}

func (r *userRepository) SetProfilePicture(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE users SET profile_picture = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, url)
	return err
}
