// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import "context"

// Repository defines the data access contract for reviews.
type Repository interface {

	/*
		Upsert inserts or replaces the (user, product) review and refreshes the
		product rating atomically.

		Returns:
		  - bool: true when a new review was created
		  - error: apperr.NotFound when the product does not exist
	*/
	Upsert(ctx context.Context, review *Review) (bool, error)

	/*
		ListByProduct returns the reviews of a product, newest first.
	*/
	ListByProduct(ctx context.Context, productID string) ([]*Review, error)

	/*
		ListByUser returns the reviews written by a user, newest first.
	*/
	ListByUser(ctx context.Context, userID string) ([]*Review, error)

	/*
		Count returns the total number of reviews.
	*/
	Count(ctx context.Context) (int, error)
}
