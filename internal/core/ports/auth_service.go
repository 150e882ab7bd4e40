package ports

import (
	"context"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

// LoginResult is returned after a successful login. Token is the signed
// envelope handed to the client; Session is the server-side record it
// references.
type LoginResult struct {
	Token   string
	Session *domain.Session
	User    *domain.User
}

// AuthService implements registration, login/logout and role management.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Logout always succeeds; closing an unknown or already-closed session
	// is a no-op.
	Logout(ctx context.Context, token string) error
	// Resolve maps a client token to its live session. Returns
	// domain.ErrUnauthenticated when the token is invalid, unknown or
	// expired.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	// Promote and Demote change a user's role. Only a caller whose live
	// role is admin may invoke them; the session snapshot is not trusted.
	Promote(ctx context.Context, actor *domain.Session, userID string) error
	Demote(ctx context.Context, actor *domain.Session, userID string) error
}
