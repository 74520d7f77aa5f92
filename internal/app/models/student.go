package models

// Student defines the student model based on the 'estudiantes' table.
// Unlike users, the student cedula carries no uniqueness constraint.
type Student struct {
	ID         int64  `json:"id" db:"id"`
	Identifier string `json:"identifier" db:"cedula"`
	Name       string `json:"name" db:"nombre"`
}
