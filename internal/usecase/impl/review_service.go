package impl

import (
	"context"
	"log/slog"

	domainerrors "bookrack/internal/domain/errors"
	"bookrack/internal/domain/repository"
	"bookrack/internal/infra/metrics"
	"bookrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface. All mutations are
// keyed by the identity the session gate resolved; no path exists to touch
// another user's review.
type reviewService struct {
	catalog repository.Catalog
	logger  *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	Catalog repository.Catalog
	Logger  *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

// UpsertReview adds or replaces the caller's review on a book. A rejected
// upsert leaves no partial write behind.
func (srv *reviewService) UpsertReview(ctx context.Context, input *usecase.UpsertReviewInput) (*usecase.UpsertReviewOutput, error) {
	if input == nil || input.Text == "" {
		metrics.ReviewMutationsTotal.WithLabelValues("upsert", "invalid").Inc()

		return nil, errors.Wrap(domainerrors.ErrReviewTextRequired, "empty review text")
	}

	outcome, err := srv.catalog.UpsertReview(ctx, input.ISBN, input.Username, input.Text)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			metrics.ReviewMutationsTotal.WithLabelValues("upsert", "book_not_found").Inc()

			return nil, errors.Wrapf(domainerrors.ErrBookNotFound, "isbn %s", input.ISBN)
		}

		return nil, errors.Wrap(err, "failed to upsert review")
	}

	srv.logger.Info("Review upserted",
		slog.String("isbn", input.ISBN),
		slog.String("username", input.Username),
		slog.String("outcome", outcome.String()),
	)
	metrics.ReviewMutationsTotal.WithLabelValues("upsert", outcome.String()).Inc()

	return &usecase.UpsertReviewOutput{Outcome: outcome}, nil
}

// DeleteReview removes the caller's review. A missing book and a missing
// review both surface as not-found.
func (srv *reviewService) DeleteReview(ctx context.Context, input *usecase.DeleteReviewInput) error {
	if err := srv.catalog.DeleteReview(ctx, input.ISBN, input.Username); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookNotFound):
			metrics.ReviewMutationsTotal.WithLabelValues("delete", "book_not_found").Inc()

			return errors.Wrapf(domainerrors.ErrBookNotFound, "isbn %s", input.ISBN)
		case errors.Is(err, repository.ErrReviewNotFound):
			metrics.ReviewMutationsTotal.WithLabelValues("delete", "review_not_found").Inc()

			return errors.Wrapf(domainerrors.ErrReviewNotFound, "isbn %s user %s", input.ISBN, input.Username)
		default:
			return errors.Wrap(err, "failed to delete review")
		}
	}

	srv.logger.Info("Review deleted",
		slog.String("isbn", input.ISBN),
		slog.String("username", input.Username),
	)
	metrics.ReviewMutationsTotal.WithLabelValues("delete", "deleted").Inc()

	return nil
}
