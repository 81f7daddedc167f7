// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	"github.com/taibuivan/herstyle/internal/platform/validate"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

// Service implements the cart use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
Get returns the caller's hydrated cart. A user without a cart gets an empty one.
*/
func (service *Service) Get(ctx context.Context, userID string) (*Cart, error) {
	items, err := service.repository.Items(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cart_service_get_failed: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return &Cart{Products: items}, nil
}

/*
Replace overwrites the cart and returns the hydrated result.

Description: Every quantity must be within [MinQuantity, MaxQuantity]. Lines
with malformed product ids are dropped, and repeated ids are merged into the
first occurrence.

Returns:
  - error: ValidationError for a bad quantity or too many lines
*/
func (service *Service) Replace(ctx context.Context, userID string, lines []Line) (*Cart, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldProducts, len(lines) > MaxLines, fmt.Sprintf("At most %d products", MaxLines))
	for _, line := range lines {
		validator.Range(FieldQuantity, line.Quantity, MinQuantity, MaxQuantity)
		if validator.HasErrors() {
			break
		}
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	merged := mergeLines(lines)
	if err := service.repository.Replace(ctx, userID, merged); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "cart_replaced",
		slog.String("user_id", userID),
		slog.Int("lines", len(merged)),
	)
	return service.Get(ctx, userID)
}

// mergeLines keeps well-formed product ids in first-seen order, summing repeats.
func mergeLines(lines []Line) []Line {
	merged := make([]Line, 0, len(lines))
	index := make(map[string]int, len(lines))

	for _, line := range lines {
		if !uuid.IsValid(line.ProductID) {
			continue
		}
		if at, seen := index[line.ProductID]; seen {
			merged[at].Quantity = min(merged[at].Quantity+line.Quantity, MaxQuantity)
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

/*
Clear empties the caller's cart.
*/
func (service *Service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return apperr.Unauthenticated("Authentication required")
	}
	if err := service.repository.Clear(ctx, userID); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "cart_cleared", slog.String("user_id", userID))
	return nil
}
