package usecase

import (
	"context"

	"bookrack/internal/domain/entity"
)

// UpsertReviewInput carries a review mutation. Username is the identity
// resolved by the session gate, never client-supplied.
type UpsertReviewInput struct {
	ISBN     string
	Username string
	Text     string
}

// DeleteReviewInput identifies the review to remove.
type DeleteReviewInput struct {
	ISBN     string
	Username string
}

// UpsertReviewOutput reports whether the review was created or modified.
type UpsertReviewOutput struct {
	Outcome entity.ReviewOutcome
}

// ReviewUsecase defines the authenticated review mutation operations. A
// caller can only act on their own review.
type ReviewUsecase interface {
	UpsertReview(ctx context.Context, input *UpsertReviewInput) (*UpsertReviewOutput, error)
	DeleteReview(ctx context.Context, input *DeleteReviewInput) error
}
