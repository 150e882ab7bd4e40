package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsdesk/internal/api/middleware"
	"github.com/pressroom/newsdesk/internal/core/domain"
	"github.com/pressroom/newsdesk/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: result.User})
}

// Logout invalidates the caller's session. Always succeeds, even without a
// valid token.
//
// @Summary      Logout
// @Tags         auth
// @Success      204  "session closed"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := middleware.BearerToken(c); ok {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Promote grants the admin role to a user. Admin only.
//
// @Summary      Promote a user to admin
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204  "role changed"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/promote [post]
func (h *AuthHandler) Promote(c echo.Context) error {
	return h.setRole(c, h.authService.Promote)
}

// Demote revokes the admin role from a user. Admin only.
//
// @Summary      Demote an admin to regular user
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204  "role changed"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/demote [post]
func (h *AuthHandler) Demote(c echo.Context) error {
	return h.setRole(c, h.authService.Demote)
}

func (h *AuthHandler) setRole(c echo.Context, op func(ctx context.Context, actor *domain.Session, userID string) error) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := op(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
