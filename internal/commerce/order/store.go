// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import "context"

// Repository defines the data access contract for orders.
type Repository interface {

	/*
		Create persists the order and its items in one transaction and fills in
		the server-assigned timestamps.
	*/
	Create(ctx context.Context, order *Order) error

	/*
		List returns orders newest first, with items and customer. An empty
		userID lists every order.
	*/
	List(ctx context.Context, userID string) ([]*Order, error)

	/*
		UpdateStatus sets the status and returns the updated order.

		Returns:
		  - error: apperr.NotFound when the order does not exist
	*/
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)

	/*
		Count returns the total number of orders.
	*/
	Count(ctx context.Context) (int, error)
}
