package models

// Grade defines the grade model based on the 'notas' table.
// Rows are cascade-deleted when the referenced student or subject goes away.
type Grade struct {
	ID        int64   `json:"id" db:"id"`
	StudentID int64   `json:"student_id" db:"estudiante_id"`
	SubjectID int64   `json:"subject_id" db:"materia_id"`
	Value     float64 `json:"value" db:"valor"`
}

// GradeRow is the joined projection returned by grade listings:
// student and subject names instead of raw foreign keys.
type GradeRow struct {
	ID      int64   `json:"id"`
	Student string  `json:"student"`
	Subject string  `json:"subject"`
	Value   float64 `json:"value"`
}
