package dto

// ErrorResponse is the wire shape of every error reply. Success replies
// carry the stored record (or array of records) directly, without an
// envelope, so the dashboard can render rows field for field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse wraps a message in the error wire shape
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
