// Package metrics provides Prometheus instrumentation for seqflow components.
//
// This package enables monitoring and observability for seqflow's lazy stream
// and coroutine pipeline components through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Lazy streams (nodes constructed, thunks forced, errors)
//   - Pipelines (deliveries, forwards, close propagation, failures, durations)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Pipeline pump with metrics
//	pump := pipeline.NewMetricsPump[string]("word_matcher", metrics.DefaultConfig())
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
// # Available Metrics
//
// ## Lazy Stream Metrics
//
//   - seqflow_stream_nodes_total: Total number of stream nodes constructed
//   - seqflow_stream_thunk_forces_total: Deferred tail computations actually run
//   - seqflow_stream_errors_total: Stream contract violations
//
// ## Pipeline Metrics
//
//   - seqflow_pipeline_deliveries_total: Values delivered to entry tasks
//   - seqflow_pipeline_forwards_total: Values forwarded downstream by tasks
//   - seqflow_pipeline_closes_total: Close signals propagated
//   - seqflow_pipeline_failures_total: Delivery or close failures
//   - seqflow_pipeline_delivery_duration_seconds: Time per delivered value
//   - seqflow_pipeline_pump_runs_total: Pump invocations
//   - seqflow_pipeline_tasks_open: Tasks not yet closed
//
// # Labels
//
// Metrics include relevant labels for filtering and aggregation:
//
//   - stream_name: User-provided name for the stream instance
//   - pipeline_name: User-provided name for the pipeline instance
//   - role: Task role ("producer", "filter", "consumer")
//   - operation: Stream operation ("head", "tail", "to_slice")
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Conditional metrics updates based on enabled state
package metrics
