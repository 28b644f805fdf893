package pipeline

import (
	"strings"
)

// Match returns a filter behavior that forwards values containing pattern as
// a substring.
func Match(pattern string) Behavior[string] {
	return &matchBehavior{pattern: pattern}
}

type matchBehavior struct {
	pattern string
}

func (b *matchBehavior) OnValue(v string, emit Emit[string]) error {
	if strings.Contains(v, b.pattern) {
		return emit(v)
	}
	return nil
}

func (b *matchBehavior) OnClose(Emit[string]) error {
	return nil
}

// FilterFunc returns a filter behavior that forwards values matching pred.
func FilterFunc[T any](pred func(T) bool) Behavior[T] {
	return &filterFuncBehavior[T]{pred: pred}
}

type filterFuncBehavior[T any] struct {
	pred func(T) bool
}

func (b *filterFuncBehavior[T]) OnValue(v T, emit Emit[T]) error {
	if b.pred(v) {
		return emit(v)
	}
	return nil
}

func (b *filterFuncBehavior[T]) OnClose(Emit[T]) error {
	return nil
}

// MapFunc returns a behavior that forwards fn applied to every value.
func MapFunc[T any](fn func(T) T) Behavior[T] {
	return &mapFuncBehavior[T]{fn: fn}
}

type mapFuncBehavior[T any] struct {
	fn func(T) T
}

func (b *mapFuncBehavior[T]) OnValue(v T, emit Emit[T]) error {
	return emit(b.fn(v))
}

func (b *mapFuncBehavior[T]) OnClose(Emit[T]) error {
	return nil
}

// Passthrough returns a behavior that forwards every value unchanged.
func Passthrough[T any]() Behavior[T] {
	return MapFunc(func(v T) T { return v })
}

// Collector is a consumer behavior accumulating every delivered value. It
// records how many close signals it received, which is useful for verifying
// exactly-once close propagation.
type Collector[T any] struct {
	values []T
	closes int
}

// Collect creates an empty Collector.
func Collect[T any]() *Collector[T] {
	return &Collector[T]{}
}

// OnValue implements Behavior.
func (c *Collector[T]) OnValue(v T, _ Emit[T]) error {
	c.values = append(c.values, v)
	return nil
}

// OnClose implements Behavior.
func (c *Collector[T]) OnClose(Emit[T]) error {
	c.closes++
	return nil
}

// Values returns the collected values in delivery order.
func (c *Collector[T]) Values() []T {
	out := make([]T, len(c.values))
	copy(out, c.values)
	return out
}

// CloseCount returns how many close signals the collector received.
func (c *Collector[T]) CloseCount() int {
	return c.closes
}

// Reducer folds delivered values into an accumulator and emits the final
// aggregate from its cleanup branch, so a downstream subscriber receives the
// summary before its close signal. Used as a consumer, the aggregate is
// available from Value instead.
type Reducer[T any] struct {
	value      T
	accumulate func(T, T) T
}

// Reduce creates a Reducer starting from identity.
func Reduce[T any](identity T, accumulate func(T, T) T) *Reducer[T] {
	return &Reducer[T]{value: identity, accumulate: accumulate}
}

// OnValue implements Behavior.
func (r *Reducer[T]) OnValue(v T, _ Emit[T]) error {
	r.value = r.accumulate(r.value, v)
	return nil
}

// OnClose implements Behavior.
func (r *Reducer[T]) OnClose(emit Emit[T]) error {
	return emit(r.value)
}

// Value returns the current aggregate.
func (r *Reducer[T]) Value() T {
	return r.value
}

// Sink returns a consumer behavior invoking fn on every delivered value.
func Sink[T any](fn func(T)) Behavior[T] {
	return &sinkBehavior[T]{fn: fn}
}

type sinkBehavior[T any] struct {
	fn func(T)
}

func (b *sinkBehavior[T]) OnValue(v T, _ Emit[T]) error {
	b.fn(v)
	return nil
}

func (b *sinkBehavior[T]) OnClose(Emit[T]) error {
	return nil
}

// StopAfter returns a behavior that forwards the first n values and then
// requests its own close sequence, demonstrating a task body that chooses to
// stop rather than await further input. Best used on entry tasks or
// consumers: once stopped, further upstream deliveries to this task fail
// with ErrAlreadyClosed and abort the pump.
func StopAfter[T any](n int) Behavior[T] {
	return &stopAfterBehavior[T]{remaining: n}
}

type stopAfterBehavior[T any] struct {
	remaining int
}

func (b *stopAfterBehavior[T]) OnValue(v T, emit Emit[T]) error {
	if b.remaining <= 0 {
		return ErrStop
	}
	b.remaining--
	if err := emit(v); err != nil {
		return err
	}
	if b.remaining == 0 {
		return ErrStop
	}
	return nil
}

func (b *stopAfterBehavior[T]) OnClose(Emit[T]) error {
	return nil
}
