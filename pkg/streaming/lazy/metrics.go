package lazy

import (
	"context"

	seqerrors "github.com/vnykmshr/seqflow/pkg/common/errors"
	"github.com/vnykmshr/seqflow/pkg/metrics"
)

// Meter instruments lazy streams with Prometheus metrics.
type Meter[T any] struct {
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewMeter creates a Meter publishing under the given stream name.
func NewMeter[T any](name string, config metrics.Config) *Meter[T] {
	registry := metrics.DefaultRegistry
	if config.Registry != nil {
		registry = metrics.NewRegistry(config.Registry)
	}

	return &Meter[T]{
		name:     name,
		registry: registry,
		enabled:  config.Enabled,
	}
}

// Stream wraps s so that materialized nodes and executed tail computations
// are counted. The wrapper is itself memoized, so re-traversals served from
// the cache do not inflate the force counter.
func (m *Meter[T]) Stream(s *Node[T]) *Node[T] {
	if !m.enabled {
		return s
	}
	return Delay(func() *Node[T] {
		r := s.settle()
		if r == nil {
			return nil
		}
		m.registry.StreamNodes.WithLabelValues(m.name).Inc()
		return Cons(r.head, func() *Node[T] {
			m.registry.ThunkForces.WithLabelValues(m.name).Inc()
			return m.Stream(r.forceTail())
		})
	})
}

// ToSlice materializes s, counting contract violations against the stream's
// error metric.
func (m *Meter[T]) ToSlice(ctx context.Context, s *Node[T]) ([]T, error) {
	out, err := ToSlice(ctx, s)
	if err != nil && m.enabled && seqerrors.IsContractViolation(err) {
		m.registry.StreamErrors.WithLabelValues("to_slice", m.name).Inc()
	}
	return out, err
}
