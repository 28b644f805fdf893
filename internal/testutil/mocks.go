package testutil

import (
	"context"
	"sync"
)

// CountingSource yields a fixed set of values while recording how many times
// Next was called. Used to verify that consumers pull each position exactly
// once.
type CountingSource[T any] struct {
	mu     sync.Mutex
	values []T
	index  int
	calls  int
	closed bool
}

// NewCountingSource creates a CountingSource over the given values.
func NewCountingSource[T any](values ...T) *CountingSource[T] {
	return &CountingSource[T]{values: values}
}

// Next implements the source contract.
func (s *CountingSource[T]) Next(ctx context.Context) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.calls++

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	default:
	}

	if s.index >= len(s.values) {
		return zero, false, nil
	}
	v := s.values[s.index]
	s.index++
	return v, true, nil
}

// Close marks the source closed.
func (s *CountingSource[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Calls returns how many times Next was invoked.
func (s *CountingSource[T]) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Closed reports whether Close was called.
func (s *CountingSource[T]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// FailingSource yields a fixed prefix of values and then fails with the
// given error.
type FailingSource[T any] struct {
	values []T
	err    error
	index  int
}

// NewFailingSource creates a FailingSource that fails after yielding values.
func NewFailingSource[T any](err error, values ...T) *FailingSource[T] {
	return &FailingSource[T]{values: values, err: err}
}

// Next implements the source contract.
func (s *FailingSource[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	if s.index >= len(s.values) {
		return zero, false, s.err
	}
	v := s.values[s.index]
	s.index++
	return v, true, nil
}

// Close is a no-op.
func (s *FailingSource[T]) Close() error {
	return nil
}
