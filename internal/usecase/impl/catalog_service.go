package impl

import (
	"context"
	"log/slog"

	"bookrack/internal/domain/entity"
	domainerrors "bookrack/internal/domain/errors"
	"bookrack/internal/domain/repository"
	"bookrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface over the read-only
// catalog collaborator.
type catalogService struct {
	catalog repository.Catalog
	logger  *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Catalog repository.Catalog
	Logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

func (srv *catalogService) ListBooks(ctx context.Context) ([]*entity.Book, error) {
	books, err := srv.catalog.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

func (srv *catalogService) GetBook(ctx context.Context, isbn string) (*entity.Book, error) {
	book, err := srv.catalog.FindByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrBookNotFound, "isbn %s", isbn)
		}

		return nil, errors.Wrap(err, "failed to find book")
	}

	return book, nil
}

func (srv *catalogService) SearchByAuthor(ctx context.Context, author string) ([]*entity.Book, error) {
	books, err := srv.catalog.FindByAuthor(ctx, author)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search by author")
	}
	if len(books) == 0 {
		return nil, errors.Wrapf(domainerrors.ErrNoBooksMatched, "author %s", author)
	}

	return books, nil
}

func (srv *catalogService) SearchByTitle(ctx context.Context, title string) ([]*entity.Book, error) {
	books, err := srv.catalog.FindByTitle(ctx, title)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search by title")
	}
	if len(books) == 0 {
		return nil, errors.Wrapf(domainerrors.ErrNoBooksMatched, "title %s", title)
	}

	return books, nil
}

// GetReviews returns the review map of a book. An empty map reports
// not-found, preserving the public read surface's behavior.
func (srv *catalogService) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {
	book, err := srv.GetBook(ctx, isbn)
	if err != nil {
		return nil, err
	}

	if len(book.Reviews) == 0 {
		return nil, errors.Wrapf(domainerrors.ErrReviewNotFound, "isbn %s", isbn)
	}

	return book.Reviews, nil
}
