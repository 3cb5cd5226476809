package types

// ErrorKind labels a request failure for metrics collection.
//
// Values are Prometheus-compatible label values.
type ErrorKind string

const (
	// ErrorKindHTTPStatus labels failures where the server answered >= 300.
	ErrorKindHTTPStatus ErrorKind = "http_status"

	// ErrorKindNoContent labels 2xx responses with an empty body.
	ErrorKindNoContent ErrorKind = "no_content"

	// ErrorKindConnection labels name-resolution failures.
	ErrorKindConnection ErrorKind = "connection"

	// ErrorKindTransport labels other I/O failures.
	ErrorKindTransport ErrorKind = "transport"

	// ErrorKindRetryExhausted labels calls that exhausted the retry budget.
	ErrorKindRetryExhausted ErrorKind = "retry_exhausted"
)

// MetricsCollector defines methods for collecting operational metrics.
//
// Implementations must be thread-safe as methods may be called concurrently
// from independent calls.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	client, _ := ogm.New(url, ogm.WithMetrics(collector))
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// IncRequestTotal increments the total executed request counter.
	// Counted once per logical call, not per attempt.
	IncRequestTotal()

	// IncRequestError increments the failed request counter for the kind.
	IncRequestError(kind ErrorKind)

	// ObserveRequestDuration records a full call duration in seconds,
	// including any retry waits.
	ObserveRequestDuration(seconds float64)

	// IncRetryAttempt increments the retry counter. Counted once per
	// transient send failure.
	IncRetryAttempt()
}
