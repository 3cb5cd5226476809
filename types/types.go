package types

// Statement is a single query plus its parameter bindings.
//
// A Statement is a value type: it is created by the caller, serialized once
// by the wire codec, and never mutated by the driver.
type Statement struct {
	// Text is the query text. An empty Text short-circuits execution to an
	// empty response without any network call.
	Text string

	// Parameters holds the named parameter bindings for the query.
	// A nil map is serialized as an empty object so the server always
	// receives a parameters field.
	Parameters map[string]any
}

// StatusClass is the coarse classification of an HTTP response status.
type StatusClass int

const (
	// StatusSuccess covers statuses in [200, 300).
	StatusSuccess StatusClass = iota

	// StatusClientError covers statuses in [300, 500).
	StatusClientError

	// StatusServerError covers statuses >= 500.
	StatusServerError
)

// String returns the string representation of the StatusClass.
func (c StatusClass) String() string {
	switch c {
	case StatusSuccess:
		return "success"
	case StatusClientError:
		return "client_error"
	case StatusServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// ClassifyStatus maps an HTTP status code to its StatusClass.
func ClassifyStatus(code int) StatusClass {
	switch {
	case code < 300:
		return StatusSuccess
	case code < 500:
		return StatusClientError
	default:
		return StatusServerError
	}
}

// Logger defines the logging interface used throughout the driver.
//
// Methods accept a message and alternating key/value pairs, e.g.:
//
//	logger.Warn("no response from server", "attempt", 2, "wait_ms", 2000)
//
// Implementations must be safe for concurrent use. The driver defaults to a
// no-op logger when none is configured.
type Logger interface {
	// Debug logs a debug-level message with optional key/value pairs.
	Debug(msg string, args ...any)

	// Info logs an info-level message with optional key/value pairs.
	Info(msg string, args ...any)

	// Warn logs a warning-level message with optional key/value pairs.
	Warn(msg string, args ...any)

	// Error logs an error-level message with optional key/value pairs.
	Error(msg string, args ...any)
}
