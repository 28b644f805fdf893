// Package metrics provides Prometheus instrumentation for seqflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for seqflow components.
type Registry struct {
	// Lazy Stream Metrics
	StreamNodes  *prometheus.CounterVec
	ThunkForces  *prometheus.CounterVec
	StreamErrors *prometheus.CounterVec

	// Pipeline Metrics
	PipelineDeliveries *prometheus.CounterVec
	PipelineForwards   *prometheus.CounterVec
	PipelineCloses     *prometheus.CounterVec
	PipelineFailures   *prometheus.CounterVec
	DeliveryDuration   *prometheus.HistogramVec
	PumpRuns           *prometheus.CounterVec
	TasksOpen          *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by seqflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Lazy Stream Metrics
		StreamNodes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "stream",
				Name:      "nodes_total",
				Help:      "Total number of stream nodes constructed",
			},
			[]string{"stream_name"},
		),

		ThunkForces: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "stream",
				Name:      "thunk_forces_total",
				Help:      "Total number of deferred tail computations actually run",
			},
			[]string{"stream_name"},
		),

		StreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "stream",
				Name:      "errors_total",
				Help:      "Total number of stream contract violations",
			},
			[]string{"operation", "stream_name"},
		),

		// Pipeline Metrics
		PipelineDeliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "deliveries_total",
				Help:      "Total number of values delivered to entry tasks",
			},
			[]string{"pipeline_name"},
		),

		PipelineForwards: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "forwards_total",
				Help:      "Total number of values forwarded downstream by tasks",
			},
			[]string{"pipeline_name", "role"},
		),

		PipelineCloses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "closes_total",
				Help:      "Total number of close signals propagated",
			},
			[]string{"pipeline_name"},
		),

		PipelineFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "failures_total",
				Help:      "Total number of delivery or close failures",
			},
			[]string{"pipeline_name"},
		),

		DeliveryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "delivery_duration_seconds",
				Help:      "Time spent delivering one value through the pipeline",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pipeline_name"},
		),

		PumpRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "pump_runs_total",
				Help:      "Total number of pump invocations",
			},
			[]string{"pipeline_name"},
		),

		TasksOpen: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "tasks_open",
				Help:      "Number of tasks not yet closed",
			},
			[]string{"pipeline_name"},
		),
	}
}
