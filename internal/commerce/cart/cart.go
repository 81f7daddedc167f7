// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cart keeps one persistent shopping cart per user.

The cart stores only product references and quantities; names, prices and
images are read from the catalog each time the cart is returned, so a cart
always shows current prices and silently loses products that were removed.
*/
package cart

// Line is a stored cart entry.
type Line struct {
	ProductID string
	Quantity  int
}

// Item is a cart entry hydrated with catalog data.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Cart is the response body of every cart endpoint except clear.
type Cart struct {
	Products []Item `json:"products"`
}

// # Constraints

const (
	MinQuantity = 1
	MaxQuantity = 99
	MaxLines    = 100
)

const (
	FieldProducts = "products"
	FieldQuantity = "quantity"
)

const resourceCart = "Cart"
