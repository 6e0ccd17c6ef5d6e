package types

// APIError is the public error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps every non-2xx response.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// MessageResponse carries a short human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
