package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table       string
	ID          string
	Name        string
	Category    string
	Description string
	Price       string
	OldPrice    string
	Image1      string
	Color       string
	Rating      string
	AuthorID    string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:       "catalog.product",
	ID:          "id",
	Name:        "name",
	Category:    "category",
	Description: "description",
	Price:       "price",
	OldPrice:    "oldprice",
	Image1:      "image1",
	Color:       "color",
	Rating:      "rating",
	AuthorID:    "authorid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CatalogProductTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Category, t.Description, t.Price, t.OldPrice,
		t.Image1, t.Color, t.Rating, t.AuthorID, t.CreatedAt, t.UpdatedAt,
	}
}
