package usecase

import (
	"context"

	"bookrack/internal/domain/entity"
)

// CatalogUsecase defines the read-only catalog lookups. These are direct
// synchronous calls; failures are terminal for the request.
type CatalogUsecase interface {
	ListBooks(ctx context.Context) ([]*entity.Book, error)
	GetBook(ctx context.Context, isbn string) (*entity.Book, error)
	SearchByAuthor(ctx context.Context, author string) ([]*entity.Book, error)
	SearchByTitle(ctx context.Context, title string) ([]*entity.Book, error)
	GetReviews(ctx context.Context, isbn string) (map[string]string, error)
}
