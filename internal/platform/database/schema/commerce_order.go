package schema

// CommerceOrderTable represents the 'commerce.orders' table
type CommerceOrderTable struct {
	Table         string
	ID            string
	UserID        string
	TotalAmount   string
	Status        string
	PaymentMethod string
	DeliveryInfo  string
	CreatedAt     string
	UpdatedAt     string
}

// CommerceOrder is the schema definition for commerce.orders
var CommerceOrder = CommerceOrderTable{
	Table:         "commerce.orders",
	ID:            "id",
	UserID:        "userid",
	TotalAmount:   "totalamount",
	Status:        "status",
	PaymentMethod: "paymentmethod",
	DeliveryInfo:  "deliveryinfo",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t CommerceOrderTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.TotalAmount, t.Status, t.PaymentMethod,
		t.DeliveryInfo, t.CreatedAt, t.UpdatedAt,
	}
}
