package models

// HTTPError represents an HTTP error response
// swagger:model HTTPError
type HTTPError struct {
	// Error message
	Error string `json:"error" example:"Not found"`
}
