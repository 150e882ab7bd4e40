package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsdesk/internal/core/ports"
)

// Context keys set by the auth middleware.
const (
	ContextKeySession = "session"
	ContextKeyRole    = "role"
)

// Auth resolves the bearer token to a live server-side session and injects
// it into the request context. Requests without a valid session are rejected.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			sess, err := auth.Resolve(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(ContextKeySession, sess)
			c.Set(ContextKeyRole, sess.Role)
			return next(c)
		}
	}
}

// OptionalAuth resolves a session when a bearer token is present but lets
// anonymous requests through. Used on public reads where a soft-deleted
// article is still visible to its author or an admin.
func OptionalAuth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := BearerToken(c); ok {
				if sess, err := auth.Resolve(c.Request().Context(), token); err == nil {
					c.Set(ContextKeySession, sess)
					c.Set(ContextKeyRole, sess.Role)
				}
			}
			return next(c)
		}
	}
}

// BearerToken extracts the token from a "Bearer <token>" Authorization
// header. Any other scheme is rejected, not mis-sliced.
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
