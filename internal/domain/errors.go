package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrServerOffline indicates the Requestarr backend is unreachable
	ErrServerOffline = errors.New("backend is unreachable")

	// ErrUnauthorized indicates the API key was rejected
	ErrUnauthorized = errors.New("API key is invalid")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrTimeout indicates a bounded fetch exceeded its ceiling
	ErrTimeout = errors.New("request timed out")
)

// APIError carries an application-level failure reported inside an otherwise
// well-formed response (success:false with an error or message field).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "backend reported failure"
}
