package schema

// CommerceCartItemTable represents the 'commerce.cartitem' table
type CommerceCartItemTable struct {
	Table     string
	UserID    string
	ProductID string
	Quantity  string
	Position  string
}

// CommerceCartItem is the schema definition for commerce.cartitem
var CommerceCartItem = CommerceCartItemTable{
	Table:     "commerce.cartitem",
	UserID:    "userid",
	ProductID: "productid",
	Quantity:  "quantity",
	Position:  "position",
}

// Columns returns all standard column names
func (t CommerceCartItemTable) Columns() []string {
	return []string{t.UserID, t.ProductID, t.Quantity, t.Position}
}
