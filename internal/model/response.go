package model

// APIResponse is the envelope returned by every handler.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse builds a success envelope with an optional payload.
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds an error envelope. detail is appended to the
// message when non-empty; keep it free of internal error text in production.
func NewErrorResponse(message, detail string) APIResponse {
	if detail != "" {
		message = message + ": " + detail
	}
	return APIResponse{Success: false, Error: message}
}
