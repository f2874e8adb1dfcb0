package account

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create inserts the account and its profile in one transaction.
	Create(ctx context.Context, a *Account, p *Profile) error
	GetByUsername(ctx context.Context, username string) (*Account, *Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, *Profile, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
