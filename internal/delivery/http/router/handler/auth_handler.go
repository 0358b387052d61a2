// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bookrack/internal/delivery/http/response"
	"bookrack/internal/delivery/http/session"
	"bookrack/internal/usecase"
)

// AuthHandler holds dependencies for registration and login handlers.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	sessions *session.Store
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, sessions *session.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		sessions: sessions,
		logger:   logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Username and password are required.")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User successfully registered. Now you can login.")
}

// Login handles the login request. On success the session record carrying
// the issued token is written back to the client before the token is
// returned in the body.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Username and password are required.")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	record := &session.Record{
		AccessToken: output.AccessToken,
		Username:    output.Username,
	}
	if err := h.sessions.Save(c.Request(), c.Response().Writer, record); err != nil {
		h.logger.Error("Failed to save session record", slog.String("error", err.Error()))

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "User successfully logged in")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
