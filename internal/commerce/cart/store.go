// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import "context"

// Repository defines the data access contract for carts.
type Repository interface {

	/*
		Items returns the user's cart joined with the catalog, in insertion order.
		Lines whose product no longer exists are not returned.
	*/
	Items(ctx context.Context, userID string) ([]Item, error)

	/*
		Replace swaps the whole cart for lines in one transaction. Lines naming
		unknown products are dropped.
	*/
	Replace(ctx context.Context, userID string, lines []Line) error

	/*
		Clear empties the cart.
	*/
	Clear(ctx context.Context, userID string) error
}
