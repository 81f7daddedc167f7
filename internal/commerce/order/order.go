// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package order implements checkout and order fulfilment.

Order items are snapshots: name, price and image are stored with the order so
that history is unaffected by later catalog edits or deletions.
*/
package order

import "time"

// Status is the fulfilment state of an order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
)

// PaymentMethod is how the shopper pays.
type PaymentMethod string

const (
	PaymentStripe   PaymentMethod = "stripe"
	PaymentRazorpay PaymentMethod = "razorpay"
	PaymentCOD      PaymentMethod = "cod"
)

// Address is a postal delivery address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
}

// IsZero reports whether no address field is filled in.
func (a *Address) IsZero() bool {
	return a == nil || *a == Address{}
}

// DeliveryInfo is the recipient of an order.
type DeliveryInfo struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Address   *Address `json:"address"`
}

// Item is one ordered product, snapshotted at checkout.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Customer identifies who placed an order in listings.
type Customer struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Order is a placed order.
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	Customer      *Customer     `json:"customer,omitempty"`
	Products      []Item        `json:"products"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        Status        `json:"status"`
	DeliveryInfo  DeliveryInfo  `json:"deliveryInfo"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CreateInput is a checkout request.
type CreateInput struct {
	Products      []Item
	TotalAmount   float64
	DeliveryInfo  *DeliveryInfo
	PaymentMethod string
}

// # Field Identifiers

const (
	FieldID            = "id"
	FieldProducts      = "products"
	FieldTotalAmount   = "totalAmount"
	FieldDeliveryInfo  = "deliveryInfo"
	FieldPaymentMethod = "paymentMethod"
	FieldStatus        = "status"
)

const (
	// MaxItems caps the number of lines in one order.
	MaxItems = 100

	// MinQuantity and MaxQuantity bound a single line. The upper bound keeps
	// quantities inside the int4 column.
	MinQuantity = 1
	MaxQuantity = 99
)

const resourceOrder = "Order"
