package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsdesk/internal/api/middleware"
	"github.com/pressroom/newsdesk/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware and
// fast-fails before any service call when it is missing — presence proves
// the middleware ran.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(middleware.ContextKeySession).(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return sess, nil
}

// ctxOptionalSession returns the session when one was resolved, or nil for
// anonymous requests. Used behind OptionalAuth.
func ctxOptionalSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(middleware.ContextKeySession).(*domain.Session)
	return sess
}
