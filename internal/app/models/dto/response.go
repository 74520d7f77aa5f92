package dto

// SuccessResponse represents a standard success acknowledgement
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Message string `json:"message"`
}
