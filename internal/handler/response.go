package handler

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error   string `json:"error" example:"An error message"`
	Message string `json:"message,omitempty" example:"Details about the error"`
}

// MessageResponse represents a generic informational response.
type MessageResponse struct {
	Message string `json:"message" example:"OK"`
}
