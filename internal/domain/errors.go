package domain

import "errors"

var (
	// ErrNotFound covers owner-scoped lookups: a row that exists but belongs
	// to another user is reported identically to a row that does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrStoreUnavailable signals that a read-phase store query failed; the
	// whole operation aborts and nothing has been written.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountPending     = errors.New("account pending approval")
	ErrInvalidTAC         = errors.New("invalid or expired authentication code")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
	ErrCategoryExists     = errors.New("category already exists")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
)
