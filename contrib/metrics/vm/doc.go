// Package vm provides a VictoriaMetrics-based implementation of the
// MetricsCollector interface.
//
// This package uses github.com/VictoriaMetrics/metrics for lightweight,
// Prometheus-compatible metrics collection.
//
// # Basic Usage
//
// Create a collector with the default prefix "ogm":
//
//	collector := vm.New()
//	client, _ := ogm.New(url, ogm.WithMetrics(collector))
//
// # Exposing Metrics
//
// Use the Handler method to expose metrics via HTTP:
//
//	http.HandleFunc("/metrics", collector.Handler)
//	http.ListenAndServe(":8080", nil)
//
// # Metrics Provided
//
//   - {prefix}_requests_total - Counter of executed requests
//   - {prefix}_request_errors_total{kind} - Counter of failed requests by
//     error kind (http_status, no_content, connection, transport,
//     retry_exhausted)
//   - {prefix}_request_duration_seconds - Histogram of full call durations,
//     retry waits included
//   - {prefix}_retry_attempts_total - Counter of transient-failure retries
//
// All metrics are pre-created at initialization time using the NewXXX
// pattern for optimal performance in hot paths, as recommended by the
// VictoriaMetrics documentation.
package vm
