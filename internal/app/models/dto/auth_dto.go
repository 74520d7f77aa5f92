package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// UserProfile is the public projection of an authenticated user.
// The credential hash is never part of it.
type UserProfile struct {
	ID         int64  `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

// LoginResponse represents a successful authentication response.
// No token is issued; the caller holds the profile client-side.
type LoginResponse struct {
	Message string      `json:"message"`
	Profile UserProfile `json:"profile"`
}
