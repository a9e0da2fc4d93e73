package storage

import "fmt"

// Error codes the drivers emit for missing resources.
const (
	CodeNotFound     = "NotFound"
	CodeNoSuchBucket = "NoSuchBucket"
)

// ProviderError is the failure reported by the object store itself. Drivers
// translate their SDK errors into it so callers never depend on SDK types.
type ProviderError struct {
	// StatusCode is the HTTP status returned by the store, 0 if unknown.
	StatusCode int
	// Code is the provider error code (e.g. NoSuchBucket, NotFound, AccessDenied).
	Code string
	// Message is the provider supplied description.
	Message string
	// Cause is the inner failure, if the provider reported one.
	Cause error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("storage: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
