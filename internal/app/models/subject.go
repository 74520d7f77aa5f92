package models

// Subject defines the subject model based on the 'materias' table
type Subject struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"codigo"`
	Name string `json:"name" db:"nombre"`
}
