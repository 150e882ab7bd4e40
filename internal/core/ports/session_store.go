package ports

import (
	"context"
	"time"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

// SessionStore owns server-side session records. Implementations bound the
// lifetime of a record by the TTL passed to Save.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	// Find returns the live session, or nil with no error when the id is
	// unknown or already expired.
	Find(ctx context.Context, id string) (*domain.Session, error)
	// Delete is idempotent: removing an absent session is not an error.
	Delete(ctx context.Context, id string) error
}
