package models

// RoleType is the user role stored in the 'rol' column
type RoleType string

const (
	RoleAdmin RoleType = "admin"
	RoleUser  RoleType = "user"
)

// User defines the user model based on the 'usuarios' table.
// Identifier is the natural-key cedula, distinct from the surrogate id.
type User struct {
	ID         int64    `json:"id" db:"id"`
	Identifier string   `json:"identifier" db:"cedula"`
	Name       string   `json:"name" db:"nombre"`
	Password   string   `json:"-" db:"password"` // bcrypt hash, never serialized
	Role       RoleType `json:"role" db:"rol"`
}
