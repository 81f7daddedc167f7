package schema

// CommerceOrderItemTable represents the 'commerce.orderitem' table
type CommerceOrderItemTable struct {
	Table     string
	OrderID   string
	Position  string
	ProductID string
	Name      string
	Price     string
	Image     string
	Quantity  string
}

// CommerceOrderItem is the schema definition for commerce.orderitem
var CommerceOrderItem = CommerceOrderItemTable{
	Table:     "commerce.orderitem",
	OrderID:   "orderid",
	Position:  "position",
	ProductID: "productid",
	Name:      "name",
	Price:     "price",
	Image:     "image",
	Quantity:  "quantity",
}

// Columns returns all standard column names
func (t CommerceOrderItemTable) Columns() []string {
	return []string{t.OrderID, t.Position, t.ProductID, t.Name, t.Price, t.Image, t.Quantity}
}
