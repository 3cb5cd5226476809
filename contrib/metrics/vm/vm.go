package vm

import (
	"fmt"
	"io"
	"net/http"

	"github.com/VictoriaMetrics/metrics"

	"github.com/mohitrajvardhan17/neo4j-ogm/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "ogm"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector registers metrics with this set instead of
// creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// All metrics are pre-created at initialization time. Thread-safe for
// concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string

	requestsTotal   *metrics.Counter
	requestDuration *metrics.Histogram
	retryAttempts   *metrics.Counter

	errorsByKind map[types.ErrorKind]*metrics.Counter
}

// Compile-time assertion that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a new VictoriaMetrics-based metrics collector.
//
// When no set is provided, the collector creates its own metrics.Set and
// registers it globally for standard Prometheus scraping.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix: "ogm",
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates all metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix

	c.requestsTotal = c.set.NewCounter(fmt.Sprintf(`%s_requests_total`, p))
	c.requestDuration = c.set.NewHistogram(fmt.Sprintf(`%s_request_duration_seconds`, p))
	c.retryAttempts = c.set.NewCounter(fmt.Sprintf(`%s_retry_attempts_total`, p))

	kinds := []types.ErrorKind{
		types.ErrorKindHTTPStatus,
		types.ErrorKindNoContent,
		types.ErrorKindConnection,
		types.ErrorKindTransport,
		types.ErrorKindRetryExhausted,
	}
	c.errorsByKind = make(map[types.ErrorKind]*metrics.Counter, len(kinds))
	for _, kind := range kinds {
		c.errorsByKind[kind] = c.set.NewCounter(
			fmt.Sprintf(`%s_request_errors_total{kind="%s"}`, p, kind))
	}
}

// IncRequestTotal increments the executed request counter.
func (c *Collector) IncRequestTotal() {
	c.requestsTotal.Inc()
}

// IncRequestError increments the failed request counter for the kind.
// Unknown kinds are dropped rather than allocating new series in the hot path.
func (c *Collector) IncRequestError(kind types.ErrorKind) {
	if counter, ok := c.errorsByKind[kind]; ok {
		counter.Inc()
	}
}

// ObserveRequestDuration records a full call duration in seconds.
func (c *Collector) ObserveRequestDuration(seconds float64) {
	c.requestDuration.Update(seconds)
}

// IncRetryAttempt increments the retry counter.
func (c *Collector) IncRetryAttempt() {
	c.retryAttempts.Inc()
}

// Handler exposes metrics in Prometheus format over HTTP.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics in Prometheus format to the writer.
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}
