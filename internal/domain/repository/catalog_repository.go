package repository

import (
	"context"
	"errors"

	"bookrack/internal/domain/entity"
)

// ErrBookNotFound is returned when an ISBN does not resolve in the catalog.
var ErrBookNotFound = errors.New("book not found")

// ErrReviewNotFound is returned when the caller has no review on the book.
var ErrReviewNotFound = errors.New("review not found")

// Catalog is the read-mostly book collection. Lookups are read-only; the
// review methods are the only mutation path and are scoped to a single
// (isbn, username) pair.
type Catalog interface {
	// All returns every book in the catalog.
	All(ctx context.Context) ([]*entity.Book, error)

	// FindByISBN retrieves a single book by its exact ISBN.
	FindByISBN(ctx context.Context, isbn string) (*entity.Book, error)

	// FindByAuthor returns books whose author matches name, ignoring case.
	FindByAuthor(ctx context.Context, name string) ([]*entity.Book, error)

	// FindByTitle returns books whose title contains substr, ignoring case.
	FindByTitle(ctx context.Context, substr string) ([]*entity.Book, error)

	// UpsertReview writes username's review on the book. It reports whether
	// the review was created or replaced. The check and write are atomic per
	// (isbn, username) key.
	UpsertReview(ctx context.Context, isbn, username, text string) (entity.ReviewOutcome, error)

	// DeleteReview removes username's review from the book. Book existence is
	// checked before review existence.
	DeleteReview(ctx context.Context, isbn, username string) error
}
