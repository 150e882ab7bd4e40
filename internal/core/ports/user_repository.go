package ports

import (
	"context"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must enforce username uniqueness atomically (check-and-insert) and
// return domain.ErrDuplicateUsername when the name is already taken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// SetRole changes a user's role in place. Role validity and the admin
	// gate are enforced by the service layer, not here.
	SetRole(ctx context.Context, id, role string) error
	HasAdmin(ctx context.Context) (bool, error)
}
