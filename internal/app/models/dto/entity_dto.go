package dto

// CreateUserRequest represents a user registration payload
type CreateUserRequest struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Secret     string `json:"secret"`
}

// CreateSubjectRequest represents a subject creation payload
type CreateSubjectRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CreateStudentRequest represents a student creation payload
type CreateStudentRequest struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// CreateGradeRequest represents a grade creation payload.
// Value is a pointer so a missing field can be told apart from a 0.0 grade.
type CreateGradeRequest struct {
	StudentID int64    `json:"student_id"`
	SubjectID int64    `json:"subject_id"`
	Value     *float64 `json:"value"`
}
