package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pressroom/newsdesk/internal/core/domain"
	"github.com/pressroom/newsdesk/internal/core/ports"
)

const bootstrapAdminUsername = "admin"

// BootstrapAdmin creates an initial admin account when none exists, with a
// randomly generated password logged exactly once. Idempotent: if any admin
// is already present, or another instance wins the race on the username
// index, nothing happens.
func BootstrapAdmin(ctx context.Context, users ports.UserRepository, log zerolog.Logger) error {
	has, err := users.HasAdmin(ctx)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	password, err := generatePassword(32)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = users.Create(ctx, &domain.User{
		Username:     bootstrapAdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil
		}
		return err
	}

	log.Warn().
		Str("username", bootstrapAdminUsername).
		Str("password", password).
		Msg("initial admin created; change this password immediately")
	return nil
}

func generatePassword(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("password length must be positive")
	}
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw)[:length], nil
}
