// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product implements the storefront catalog.

# Access

Reads are public. Creation, edits and removal are restricted to administrators
by the router; the service itself trusts its caller.
*/
package product

import "time"

// Product is a sellable catalog entry.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	OldPrice    *float64  `json:"oldPrice,omitempty"`
	Image1      string    `json:"image1"`
	Color       string    `json:"color"`
	Rating      float64   `json:"rating"`
	AuthorID    *string   `json:"authorId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Filter narrows a catalog listing. Zero values mean "no constraint".
type Filter struct {
	Category string
	Color    string
	MinPrice *float64
	MaxPrice *float64
}

// CreateInput holds the fields accepted when listing a new product.
type CreateInput struct {
	Name        string
	Category    string
	Description string
	Price       float64
	OldPrice    *float64
	Image1      string
	Color       string
}

// UpdateInput is a partial edit. Nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Category    *string
	Description *string
	Price       *float64
	OldPrice    *float64
	Image1      *string
	Color       *string
}

// # Constraints

const (
	NameMaxLength = 200

	// SearchResultsLimit caps the name search endpoint.
	SearchResultsLimit = 50

	// filterAll is the sentinel clients send for "any category/color".
	filterAll = "all"
)

// # Field Identifiers

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldOldPrice    = "oldPrice"
	FieldImage1      = "image1"
	FieldColor       = "color"
)

const resourceProduct = "Product"
