package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bookrack/internal/delivery/http/middleware"
	"bookrack/internal/delivery/http/response"
	"bookrack/internal/domain/entity"
	"bookrack/internal/usecase"
)

// reviewBody is the JSON request shape for review upserts.
type reviewBody struct {
	Review string `json:"review"`
}

// ReviewHandler holds dependencies for the authenticated review mutations.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// Upsert adds or replaces the caller's review on a book. The acting
// username comes from the session gate's verified identity.
func (h *ReviewHandler) Upsert(c echo.Context) error {
	username, ok := gateUsername(c)
	if !ok {
		return response.Forbidden(c, "NOT_LOGGED_IN", "User not logged in.")
	}

	var body reviewBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	text := body.Review
	if text == "" {
		// Original clients pass the review in the query string.
		text = c.QueryParam("review")
	}

	isbn := c.Param("isbn")
	output, err := h.uc.UpsertReview(c.Request().Context(), &usecase.UpsertReviewInput{
		ISBN:     isbn,
		Username: username,
		Text:     text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Outcome == entity.ReviewModified {
		message := fmt.Sprintf("Review for ISBN %s by %s modified successfully.", isbn, username)

		return response.Success(c, http.StatusOK, nil, message)
	}

	message := fmt.Sprintf("Review for ISBN %s by %s added successfully.", isbn, username)

	return response.Success(c, http.StatusCreated, nil, message)
}

// Delete removes the caller's review from a book.
func (h *ReviewHandler) Delete(c echo.Context) error {
	username, ok := gateUsername(c)
	if !ok {
		return response.Forbidden(c, "NOT_LOGGED_IN", "User not logged in.")
	}

	isbn := c.Param("isbn")
	if err := h.uc.DeleteReview(c.Request().Context(), &usecase.DeleteReviewInput{
		ISBN:     isbn,
		Username: username,
	}); err != nil {
		return errors.WithStack(err)
	}

	message := fmt.Sprintf("Review for ISBN %s by %s deleted successfully.", isbn, username)

	return response.Success(c, http.StatusOK, nil, message)
}

// gateUsername reads the identity the session gate attached. A missing
// value means the route was wired without the gate; the caller is denied
// either way.
func gateUsername(c echo.Context) (string, bool) {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)

	return username, ok && username != ""
}
