package dto

// LoginRequest is the DTO for the static credential check.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse is a generic informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}
