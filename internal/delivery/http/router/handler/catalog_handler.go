package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bookrack/internal/delivery/http/response"
	"bookrack/internal/usecase"
)

// CatalogHandler serves the public, read-only catalog lookups.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List returns the whole catalog.
func (h *CatalogHandler) List(c echo.Context) error {
	books, err := h.uc.ListBooks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "")
}

// GetByISBN returns a single book.
func (h *CatalogHandler) GetByISBN(c echo.Context) error {
	book, err := h.uc.GetBook(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "")
}

// GetByAuthor returns books whose author matches, ignoring case.
func (h *CatalogHandler) GetByAuthor(c echo.Context) error {
	books, err := h.uc.SearchByAuthor(c.Request().Context(), c.Param("author"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "")
}

// GetByTitle returns books whose title contains the term, ignoring case.
func (h *CatalogHandler) GetByTitle(c echo.Context) error {
	books, err := h.uc.SearchByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "")
}

// GetReviews returns a book's review map.
func (h *CatalogHandler) GetReviews(c echo.Context) error {
	reviews, err := h.uc.GetReviews(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}
