// Package metrics provides internal metrics utilities for the driver.
package metrics

import "github.com/mohitrajvardhan17/neo4j-ogm/types"

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is
// configured, avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// IncRequestTotal discards the metric.
func (m *NopMetrics) IncRequestTotal() {}

// IncRequestError discards the metric.
func (m *NopMetrics) IncRequestError(_ types.ErrorKind) {}

// ObserveRequestDuration discards the metric.
func (m *NopMetrics) ObserveRequestDuration(_ float64) {}

// IncRetryAttempt discards the metric.
func (m *NopMetrics) IncRetryAttempt() {}
