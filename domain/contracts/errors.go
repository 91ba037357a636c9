package contracts

import (
	"errors"
	"fmt"
)

// BackendError is a non-2xx response from the backend. Detail carries the
// server-provided message from the {"detail": ...} error body when present.
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// ErrorDetail extracts the server detail message from an error chain,
// returning the fallback when the error carries no usable detail.
func ErrorDetail(err error, fallback string) string {
	var backendErr *BackendError
	if errors.As(err, &backendErr) && backendErr.Detail != "" {
		return backendErr.Detail
	}
	return fallback
}
