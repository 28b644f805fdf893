package pipeline

import (
	"context"
	"time"

	seqerrors "github.com/vnykmshr/seqflow/pkg/common/errors"
	"github.com/vnykmshr/seqflow/pkg/metrics"
	"github.com/vnykmshr/seqflow/pkg/streaming/source"
)

// MetricsPump instruments a pipeline with Prometheus metrics under a
// shared pipeline name. Attach it to tasks with Instrument, then drive the
// graph with its Pump method.
type MetricsPump[T any] struct {
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewMetricsPump creates an instrumented pump for the named pipeline.
func NewMetricsPump[T any](name string, config metrics.Config) *MetricsPump[T] {
	mp := &MetricsPump[T]{name: name, enabled: config.Enabled}
	if !config.Enabled {
		return mp
	}
	if config.Registry != nil {
		mp.registry = metrics.NewRegistry(config.Registry)
	} else {
		mp.registry = metrics.DefaultRegistry
	}
	return mp
}

// Registry returns the metrics registry in use, or nil when disabled.
func (mp *MetricsPump[T]) Registry() *metrics.Registry {
	return mp.registry
}

// Instrument attaches counting hooks to t and returns it. The pipeline's
// open-task gauge is incremented now and decremented when the task closes.
// Call once per task, before Prime.
func (mp *MetricsPump[T]) Instrument(t *Task[T]) *Task[T] {
	if !mp.enabled {
		return t
	}
	reg := mp.registry
	name := mp.name
	reg.TasksOpen.WithLabelValues(name).Inc()
	return t.WithHooks(Hooks[T]{
		OnForward: func(t *Task[T], _ T) {
			reg.PipelineForwards.WithLabelValues(name, t.Role().String()).Inc()
		},
		OnClose: func(*Task[T]) {
			reg.PipelineCloses.WithLabelValues(name).Inc()
			reg.TasksOpen.WithLabelValues(name).Dec()
		},
		OnError: func(*Task[T], error) {
			reg.PipelineFailures.WithLabelValues(name).Inc()
		},
	})
}

// Pump is the instrumented equivalent of Pump: same drain, multicast, and
// close semantics, with each value's full synchronous fan-out counted and
// timed under the pipeline name.
func (mp *MetricsPump[T]) Pump(ctx context.Context, src source.Source[T], entries ...*Task[T]) error {
	if !mp.enabled {
		return Pump(ctx, src, entries...)
	}
	if len(entries) == 0 {
		return seqerrors.NewValidationError("pipeline", "entries", len(entries), "pump requires at least one entry task").
			WithHint("connect your task graph and pass its entry tasks")
	}

	mp.registry.PumpRuns.WithLabelValues(mp.name).Inc()
	deliveries := mp.registry.PipelineDeliveries.WithLabelValues(mp.name)
	duration := mp.registry.DeliveryDuration.WithLabelValues(mp.name)

	for {
		v, ok, err := src.Next(ctx)
		if err != nil {
			return seqerrors.NewOperationError("pipeline", "Pump", err)
		}
		if !ok {
			break
		}
		start := time.Now()
		for _, t := range entries {
			if t.State() == StateClosed {
				continue
			}
			deliveries.Inc()
			if err := t.Deliver(v); err != nil {
				return err
			}
		}
		duration.Observe(time.Since(start).Seconds())
	}
	for _, t := range entries {
		if t.State() == StateClosed {
			continue
		}
		if err := t.SignalClose(); err != nil {
			return err
		}
	}
	return nil
}
