package types

import (
	"errors"
	"strconv"
	"time"
)

// Sentinel errors for common failure scenarios.
var (
	// ErrNoContent indicates the server answered a request with a 2xx status
	// but an empty body. A successful execution always carries a result
	// document, so an empty success is a violation of the server contract.
	ErrNoContent = errors.New("ogm: response contains no content")

	// ErrMissingURL indicates a client was constructed without an endpoint URL.
	ErrMissingURL = errors.New("ogm: endpoint URL cannot be empty")
)

// HTTPResponseError indicates the server answered with status >= 300.
//
// This is a definitive server answer, never retried. Message is extracted
// from the structured error body when one is present, otherwise it is the
// status reason phrase.
type HTTPResponseError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Message is the human-readable failure description.
	Message string
}

// Error implements the error interface.
func (e *HTTPResponseError) Error() string {
	return "ogm: server returned " + strconv.Itoa(e.StatusCode) + ": " + e.Message
}

// Class returns the status classification of the failed response.
func (e *HTTPResponseError) Class() StatusClass {
	return ClassifyStatus(e.StatusCode)
}

// ConnectionError indicates the endpoint host could not be resolved.
//
// Name resolution failures point at a configuration problem rather than a
// transient condition, so they are never retried.
type ConnectionError struct {
	// URL is the endpoint that could not be reached.
	URL string

	// Cause is the underlying resolution error.
	Cause error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return "ogm: cannot connect to " + e.URL + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// TransportError wraps an I/O failure other than the retryable
// "no response received" condition. Never retried.
type TransportError struct {
	// Cause is the underlying transport error.
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return "ogm: request failed: " + e.Cause.Error()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// StatementError indicates the server accepted the request but reported a
// statement-level failure inside an otherwise successful response envelope.
type StatementError struct {
	// Code is the server's error code, when present.
	Code string

	// Message is the human-readable failure description.
	Message string
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Code == "" {
		return "ogm: statement failed: " + e.Message
	}
	return "ogm: statement failed (" + e.Code + "): " + e.Message
}

// RetryExhaustedError indicates a transient "no response" condition persisted
// past the configured retry budget. It carries the budget for diagnostics.
type RetryExhaustedError struct {
	// Attempts is the total number of retries that were attempted.
	Attempts int

	// WaitInterval is the cool-down interval used between attempts.
	WaitInterval time.Duration
}

// Error implements the error interface.
func (e *RetryExhaustedError) Error() string {
	return "ogm: retry failed: " + strconv.Itoa(e.Attempts) +
		" attempts made at interval " + e.WaitInterval.String()
}
