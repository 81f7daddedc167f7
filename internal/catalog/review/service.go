// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/platform/validate"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

// Service implements the review use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
Submit creates or edits the caller's review of a product.

Returns:
  - *Review: Stored review
  - bool: true when the review is new
  - error: ValidationError for bad input, NotFound when the product is missing
*/
func (service *Service) Submit(ctx context.Context, userID string, input SubmitInput) (*Review, bool, error) {
	comment := strings.TrimSpace(input.Comment)

	validator := &validate.Validator{}
	validator.UUID(FieldProductID, input.ProductID).
		Range(FieldRating, input.Rating, MinRating, MaxRating).
		Custom(FieldComment, utf8.RuneCountInString(comment) > CommentMaxLength,
			fmt.Sprintf("must be at most %d characters", CommentMaxLength))
	if err := validator.Err(); err != nil {
		return nil, false, err
	}

	review := &Review{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   comment,
	}

	created, err := service.repository.Upsert(ctx, review)
	if err != nil {
		return nil, false, err
	}

	event := "review_updated"
	if created {
		event = "review_created"
	}
	ctxutil.GetLogger(ctx).InfoContext(ctx, event,
		slog.String("review_id", review.ID),
		slog.String("product_id", review.ProductID),
		slog.Int("rating", review.Rating),
	)
	return review, created, nil
}

/*
ByProduct lists a product's reviews. A malformed id has no reviews.
*/
func (service *Service) ByProduct(ctx context.Context, productID string) ([]*Review, error) {
	if !uuid.IsValid(productID) {
		return []*Review{}, nil
	}

	reviews, err := service.repository.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("review_service_by_product_failed: %w", err)
	}
	return reviews, nil
}

/*
ByUser lists a user's reviews.

Description: Shoppers can only read their own history; administrators can read
anyone's.
*/
func (service *Service) ByUser(ctx context.Context, caller *sec.AuthClaims, userID string) ([]*Review, error) {
	if caller == nil {
		return nil, apperr.Unauthenticated("Authentication required")
	}
	if caller.UserID != userID && !caller.IsAdmin() {
		return nil, apperr.Forbidden("You can only view your own reviews")
	}
	if !uuid.IsValid(userID) {
		return []*Review{}, nil
	}

	reviews, err := service.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("review_service_by_user_failed: %w", err)
	}
	return reviews, nil
}

// Count returns the number of reviews.
func (service *Service) Count(ctx context.Context) (int, error) {
	return service.repository.Count(ctx)
}
