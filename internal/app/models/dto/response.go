package dto

// APIResponse is the standard response envelope for successful requests.
type APIResponse struct {
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse represents a bare success message
type SuccessResponse struct {
	Message string `json:"message"`
}
