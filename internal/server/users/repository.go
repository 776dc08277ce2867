package users

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists a new credential record. Returns
	// common.ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, user *User) error

	// GetByUsername returns common.ErrNotFound for unknown users.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Touch sets last_seen. Touching an unknown user is a no-op.
	Touch(ctx context.Context, username string, at time.Time) error
}
