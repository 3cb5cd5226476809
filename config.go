package ogm

import (
	"net/http"
	"time"

	"github.com/mohitrajvardhan17/neo4j-ogm/internal/logging"
	"github.com/mohitrajvardhan17/neo4j-ogm/internal/metrics"
	"github.com/mohitrajvardhan17/neo4j-ogm/policy"
	"github.com/mohitrajvardhan17/neo4j-ogm/types"
)

// DefaultUserAgent identifies the driver on every request unless overridden.
const DefaultUserAgent = "neo4j-ogm.go/1.0"

// ClientConfig holds configuration for the query client.
type ClientConfig struct {
	// HTTPClient is the injected transport. Connection pooling, TLS and
	// timeouts are its responsibility; it must be safe for concurrent use.
	HTTPClient *http.Client

	// Credentials decorates each request with authentication headers.
	// Nil means anonymous access.
	Credentials types.Credentials

	// UserAgent is sent on every request.
	UserAgent string

	// Retries is the attempt budget for transient "no response" failures:
	// the maximum number of send attempts per call.
	Retries int

	// WaitInterval is the fixed cool-down between attempts.
	WaitInterval time.Duration

	Logger  types.Logger
	Metrics types.MetricsCollector
}

// DefaultConfig returns a ClientConfig with sensible defaults.
//
// Defaults: a plain http.Client transport, anonymous access, 3 retries with
// a 2 second fixed wait, no-op logger and metrics.
//
// Returns:
//   - *ClientConfig: Configuration with default settings
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		HTTPClient:   &http.Client{},
		UserAgent:    DefaultUserAgent,
		Retries:      policy.DefaultRetries,
		WaitInterval: policy.DefaultWaitInterval,
		Logger:       logging.NewNopLogger(),
		Metrics:      metrics.NewNopMetrics(),
	}
}

// Option is a functional option for configuring the client.
type Option func(*ClientConfig)

// WithHTTPClient sets the injected HTTP transport.
//
// Parameters:
//   - hc: The HTTP client to send requests with
//
// Returns:
//   - Option: Configuration option
func WithHTTPClient(hc *http.Client) Option {
	return func(c *ClientConfig) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithCredentials sets the credentials applied to each request.
//
// Parameters:
//   - creds: The credentials capability, or nil for anonymous access
//
// Returns:
//   - Option: Configuration option
func WithCredentials(creds types.Credentials) Option {
	return func(c *ClientConfig) {
		c.Credentials = creds
	}
}

// WithUserAgent overrides the User-Agent header sent on every request.
//
// Parameters:
//   - ua: The user agent string
//
// Returns:
//   - Option: Configuration option
func WithUserAgent(ua string) Option {
	return func(c *ClientConfig) {
		if ua != "" {
			c.UserAgent = ua
		}
	}
}

// WithRetry configures the retry budget for transient failures.
//
// Parameters:
//   - retries: Attempt budget per call; values < 1 mean a single attempt
//   - wait: Fixed cool-down between attempts
//
// Returns:
//   - Option: Configuration option
func WithRetry(retries int, wait time.Duration) Option {
	return func(c *ClientConfig) {
		c.Retries = retries
		c.WaitInterval = wait
	}
}

// WithLogger sets the logger for driver events.
//
// Parameters:
//   - logger: The logger to receive attempt and classification events
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(c *ClientConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithMetrics sets the metrics collector for driver events.
//
// Parameters:
//   - collector: The collector to receive request and retry metrics
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(c *ClientConfig) {
		if collector != nil {
			c.Metrics = collector
		}
	}
}
