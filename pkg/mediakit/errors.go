package mediakit

import "fmt"

// Upload failures fall into four buckets so callers can decide what is
// retryable. Server and network errors are transient; invalid-request
// and abort errors are not.

// AbortError means the caller cancelled the upload.
type AbortError struct {
	Reason string
}

func (e *AbortError) Error() string {
	if e.Reason == "" {
		return "upload aborted"
	}
	return fmt.Sprintf("upload aborted: %s", e.Reason)
}

// InvalidRequestError means the CDN rejected the request (4xx).
type InvalidRequestError struct {
	StatusCode int
	Message    string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid upload request (status %d): %s", e.StatusCode, e.Message)
}

// ServerError means the CDN failed (5xx); the upload may be retried.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("cdn server error (status %d): %s", e.StatusCode, e.Message)
}

// NetworkError means the request never got a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during upload: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UnknownError wraps anything that does not fit the other buckets.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown upload error: %v", e.Err)
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}
