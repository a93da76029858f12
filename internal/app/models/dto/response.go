package dto

// ErrorResponse is the wire format for all error responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// MessageResponse is a confirmation response for operations without a payload
type MessageResponse struct {
	Message string `json:"message"`
}
