// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package review implements product reviews.

Each shopper holds at most one review per product; submitting again edits it.
The product's rating is the mean of its reviews and is recomputed in the same
transaction as every write.
*/
package review

import "time"

// Review is one shopper's rating of one product.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmitInput is a shopper's review of a product.
type SubmitInput struct {
	ProductID string
	Rating    int
	Comment   string
}

// # Constraints

const (
	MinRating        = 1
	MaxRating        = 5
	CommentMaxLength = 2000
)

// # Field Identifiers

const (
	FieldProductID = "productId"
	FieldUserID    = "userId"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

const (
	resourceReview  = "Review"
	resourceProduct = "Product"
)
