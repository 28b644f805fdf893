package pipeline

import (
	"context"

	seqerrors "github.com/vnykmshr/seqflow/pkg/common/errors"
	"github.com/vnykmshr/seqflow/pkg/streaming/source"
)

// Chain connects tasks sequentially so each forwards to the next. It returns
// the first task, which serves as the entry point for delivery.
func Chain[T any](tasks ...*Task[T]) (*Task[T], error) {
	if len(tasks) == 0 {
		return nil, seqerrors.NewValidationError("pipeline", "tasks", len(tasks), "chain requires at least one task").
			WithHint("pass the tasks in upstream-to-downstream order")
	}
	for i := 0; i < len(tasks)-1; i++ {
		if err := tasks[i].Connect(tasks[i+1]); err != nil {
			return nil, err
		}
	}
	return tasks[0], nil
}

// PrimeAll primes every task reachable from the given entry tasks exactly
// once, even when a task is subscribed to several upstreams. Downstream
// tasks are primed before their upstreams, so a behavior that emits at
// start time always finds its subscribers at their suspension points.
func PrimeAll[T any](entries ...*Task[T]) error {
	visited := make(map[string]bool)
	for _, t := range entries {
		if err := primeWalk(t, visited); err != nil {
			return err
		}
	}
	return nil
}

func primeWalk[T any](t *Task[T], visited map[string]bool) error {
	if t == nil || visited[t.ID()] {
		return nil
	}
	visited[t.ID()] = true
	for _, d := range t.downstream {
		if err := primeWalk(d, visited); err != nil {
			return err
		}
	}
	return t.Prime()
}

// Pump drains src and delivers each value to every entry task in
// registration order, then signals close to each entry in the same order.
// Delivery is synchronous: the source is not advanced until every entry has
// finished processing the current value.
//
// A delivery or close failure aborts the pump and is returned to the caller;
// remaining entries are left unsignalled so the caller can inspect their
// state. Entries that closed themselves mid-run (for example via ErrStop)
// are skipped rather than treated as failures.
func Pump[T any](ctx context.Context, src source.Source[T], entries ...*Task[T]) error {
	if len(entries) == 0 {
		return seqerrors.NewValidationError("pipeline", "entries", len(entries), "pump requires at least one entry task").
			WithHint("connect your task graph and pass its entry tasks")
	}
	for {
		v, ok, err := src.Next(ctx)
		if err != nil {
			return seqerrors.NewOperationError("pipeline", "Pump", err)
		}
		if !ok {
			break
		}
		for _, t := range entries {
			if t.State() == StateClosed {
				continue
			}
			if err := t.Deliver(v); err != nil {
				return err
			}
		}
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

// Producer couples an entry task with a source and runs the pair as a pull
// loop. It is the single-entry convenience over Pump for linear pipelines.
type Producer[T any] struct {
	task *Task[T]
	src  source.Source[T]
}

// NewProducer creates a producer task named name that forwards every source
// value downstream unchanged.
func NewProducer[T any](name string, src source.Source[T]) *Producer[T] {
	return &Producer[T]{
		task: NewTask(name, RoleProducer, Passthrough[T]()),
		src:  src,
	}
}

// Task returns the underlying entry task, for hook attachment or inspection.
func (p *Producer[T]) Task() *Task[T] {
	return p.task
}

// Connect subscribes t to the producer's output.
func (p *Producer[T]) Connect(t *Task[T]) error {
	return p.task.Connect(t)
}

// Run primes the task graph, drains the source through it, and signals
// close. It returns the first delivery or close error, or the source error
// that ended the run.
func (p *Producer[T]) Run(ctx context.Context) error {
	if err := PrimeAll(p.task); err != nil {
		return err
	}
	return Pump(ctx, p.src, p.task)
}
