package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pressroom/newsdesk/internal/core/domain"
	"github.com/pressroom/newsdesk/internal/core/ports"
	"github.com/pressroom/newsdesk/internal/metrics"
)

const defaultSessionTTL = 24 * time.Hour

// dummyHash is compared against when the username does not exist, so unknown
// and known users take the same bcrypt time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration, login/logout and role management.
// Password hashing is CPU-bound, so concurrent hashes are capped by a
// fixed-size semaphore: a burst of registrations cannot starve other
// requests.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	jwtSecret  string
	sessionTTL time.Duration
	hashSem    chan struct{}
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, sessionTTL time.Duration, hashWorkers int, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	if hashWorkers <= 0 {
		hashWorkers = 4
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		hashSem:    make(chan struct{}, hashWorkers),
		logger:     logger,
	}
}

// Register creates a new account with the default role. Username uniqueness
// is enforced atomically by the repository.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := s.hashPassword(ctx, password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and opens a session. An unknown username and a
// wrong password fail identically with ErrInvalidCredentials so the response
// never reveals which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a compare anyway so the miss costs the same as a hit.
			_ = s.comparePassword(ctx, dummyHash, password)
			metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.comparePassword(ctx, user.PasswordHash, password); err != nil {
		metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess, s.sessionTTL); err != nil {
		return nil, err
	}

	token, err := s.signToken(sess)
	if err != nil {
		return nil, err
	}

	metrics.AuthLoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Str("session_id", sess.ID).Msg("login")

	return &ports.LoginResult{Token: token, Session: sess, User: user}, nil
}

// Logout closes the session referenced by token. Unknown, malformed or
// already-closed tokens are treated as success.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sid, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sid)
}

// Resolve maps a client token to its live server-side session.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	sid, err := s.parseToken(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	sess, err := s.sessions.Find(ctx, sid)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Expired(time.Now().UTC()) {
		return nil, domain.ErrUnauthenticated
	}
	return sess, nil
}

// Promote grants the admin role. The actor's live role is re-read; a stale
// admin snapshot on the session does not suffice.
func (s *AuthService) Promote(ctx context.Context, actor *domain.Session, userID string) error {
	return s.setRole(ctx, actor, userID, domain.RoleAdmin)
}

// Demote revokes the admin role.
func (s *AuthService) Demote(ctx context.Context, actor *domain.Session, userID string) error {
	return s.setRole(ctx, actor, userID, domain.RoleUser)
}

func (s *AuthService) setRole(ctx context.Context, actor *domain.Session, userID, role string) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	liveActor, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if !liveActor.IsAdmin() {
		return domain.ErrUnauthorized
	}
	if !domain.ValidRole(role) {
		return domain.ErrValidation
	}

	if err := s.users.SetRole(ctx, userID, role); err != nil {
		return err
	}
	s.logger.Info().Str("actor_id", liveActor.ID).Str("user_id", userID).Str("role", role).Msg("role changed")
	return nil
}

// hashPassword runs bcrypt under the semaphore, honouring ctx cancellation
// while waiting for a slot.
func (s *AuthService) hashPassword(ctx context.Context, password string) (string, error) {
	select {
	case s.hashSem <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-s.hashSem }()

	start := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) comparePassword(ctx context.Context, hash, password string) error {
	select {
	case s.hashSem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.hashSem }()

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// signToken wraps the session id and display snapshots in an HS256 JWT. The
// claims are informational; authorization always goes through Resolve and
// the live user record.
func (s *AuthService) signToken(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sess.ID,
		"username": sess.Username,
		"role":     sess.Role,
		"exp":      sess.ExpiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrUnauthenticated
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrUnauthenticated
	}
	return sid, nil
}
