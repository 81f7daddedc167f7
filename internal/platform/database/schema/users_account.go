package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Email        string
	Password     string
	Role         string
	Username     string
	Bio          string
	Profession   string
	ProfileImage string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	Password:     "passwordhash",
	Role:         "role",
	Username:     "username",
	Bio:          "bio",
	Profession:   "profession",
	ProfileImage: "profileimage",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.Role, t.Username, t.Bio,
		t.Profession, t.ProfileImage, t.CreatedAt, t.UpdatedAt,
	}
}
