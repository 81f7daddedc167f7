// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/platform/validate"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

// Service implements the order use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
Create places an order for userID.

Description: The order starts as Pending. A blank payment method means cash
on delivery.

Returns:
  - *Order: Persisted order
  - error: ValidationError describing the first unusable field of each kind
*/
func (service *Service) Create(ctx context.Context, userID string, input CreateInput) (*Order, error) {
	payment := PaymentMethod(strings.TrimSpace(input.PaymentMethod))
	if payment == "" {
		payment = PaymentCOD
	}

	if err := validateCreate(input, payment); err != nil {
		return nil, err
	}

	items := make([]Item, len(input.Products))
	for i, item := range input.Products {
		item.Name = strings.TrimSpace(item.Name)
		items[i] = item
	}

	order := &Order{
		ID:            uuid.New(),
		UserID:        userID,
		Products:      items,
		TotalAmount:   input.TotalAmount,
		Status:        StatusPending,
		DeliveryInfo:  *input.DeliveryInfo,
		PaymentMethod: payment,
	}

	if err := service.repository.Create(ctx, order); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "order_created",
		slog.String("order_id", order.ID),
		slog.String("user_id", userID),
		slog.Int("items", len(items)),
		slog.Float64("total_amount", order.TotalAmount),
		slog.String("payment_method", string(payment)),
	)
	return order, nil
}

func validateCreate(input CreateInput, payment PaymentMethod) error {
	validator := &validate.Validator{}

	validator.Custom(FieldProducts, len(input.Products) == 0, "Products array is required").
		Custom(FieldProducts, len(input.Products) > MaxItems, fmt.Sprintf("At most %d products", MaxItems))

	for i, item := range input.Products {
		field := fmt.Sprintf("%s[%d]", FieldProducts, i)
		validator.Custom(field+".productId", !uuid.IsValid(item.ProductID), "Invalid productId").
			Range(field+".quantity", item.Quantity, MinQuantity, MaxQuantity).
			Custom(field+".price", item.Price < 0, "Must not be negative")
		if validator.HasErrors() {
			break
		}
	}

	validator.Positive(FieldTotalAmount, input.TotalAmount)

	delivery := input.DeliveryInfo
	validator.Custom(FieldDeliveryInfo,
		delivery == nil ||
			strings.TrimSpace(delivery.FirstName) == "" ||
			strings.TrimSpace(delivery.LastName) == "" ||
			delivery.Address.IsZero(),
		"Complete delivery info is required")

	validator.OneOf(FieldPaymentMethod, string(payment),
		string(PaymentStripe), string(PaymentRazorpay), string(PaymentCOD))

	return validator.Err()
}

/*
List returns the caller's orders, or every order for an administrator.
*/
func (service *Service) List(ctx context.Context, caller *sec.AuthClaims) ([]*Order, error) {
	if caller == nil {
		return nil, apperr.Unauthenticated("Authentication required")
	}

	owner := caller.UserID
	if caller.IsAdmin() {
		owner = ""
	}

	orders, err := service.repository.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("order_service_list_failed: %w", err)
	}
	if orders == nil {
		orders = []*Order{}
	}
	return orders, nil
}

/*
UpdateStatus moves an order to a new fulfilment state.

Returns:
  - error: ValidationError for an unknown status, NotFound when the order is missing
*/
func (service *Service) UpdateStatus(ctx context.Context, id, status string) (*Order, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, status, string(StatusPending), string(StatusShipped), string(StatusDelivered))
	if err := validator.Err(); err != nil {
		return nil, err
	}
	if !uuid.IsValid(id) {
		return nil, apperr.NotFound(resourceOrder)
	}

	order, err := service.repository.UpdateStatus(ctx, id, Status(status))
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "order_status_updated",
		slog.String("order_id", id),
		slog.String("status", status),
	)
	return order, nil
}

// Count returns the number of orders.
func (service *Service) Count(ctx context.Context) (int, error) {
	return service.repository.Count(ctx)
}
