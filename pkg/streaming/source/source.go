package source

import (
	"context"
	"sync/atomic"
)

// Source represents an external producer of sequential values. It is the
// minimal contract through which both the lazy stream engine and the
// pipeline runtime consume input: produce the next value, or report
// end-of-input.
type Source[T any] interface {
	// Next returns the next value and true, or the zero value and false when
	// the source is exhausted.
	Next(ctx context.Context) (T, bool, error)

	// Close closes the source and releases resources.
	Close() error
}

// sliceSource implements Source for slices.
type sliceSource[T any] struct {
	slice []T
	index int64
}

// FromSlice creates a Source that yields the elements of slice in order.
func FromSlice[T any](slice []T) Source[T] {
	return &sliceSource[T]{slice: slice}
}

func (s *sliceSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	currentIndex := atomic.AddInt64(&s.index, 1) - 1
	if currentIndex >= int64(len(s.slice)) {
		return zero, false, nil
	}

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	default:
		return s.slice[currentIndex], true, nil
	}
}

func (s *sliceSource[T]) Close() error {
	return nil
}

// funcSource implements Source for generator functions.
type funcSource[T any] struct {
	generate func() (T, bool)
}

// FromFunc creates a Source backed by a generator function. The generator
// returns false when exhausted; a generator that never returns false yields
// an unbounded source.
func FromFunc[T any](generate func() (T, bool)) Source[T] {
	return &funcSource[T]{generate: generate}
}

func (s *funcSource[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	default:
		v, ok := s.generate()
		return v, ok, nil
	}
}

func (s *funcSource[T]) Close() error {
	return nil
}

// channelSource implements Source for channels.
type channelSource[T any] struct {
	ch <-chan T
}

// FromChannel creates a Source that yields values received from ch until it
// is closed.
func FromChannel[T any](ch <-chan T) Source[T] {
	return &channelSource[T]{ch: ch}
}

func (s *channelSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	select {
	case value, ok := <-s.ch:
		if !ok {
			return zero, false, nil
		}
		return value, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

func (s *channelSource[T]) Close() error {
	return nil
}

// emptySource implements Source for empty input.
type emptySource[T any] struct{}

// Empty creates a Source with no values.
func Empty[T any]() Source[T] {
	return &emptySource[T]{}
}

func (s *emptySource[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	return zero, false, nil
}

func (s *emptySource[T]) Close() error {
	return nil
}
