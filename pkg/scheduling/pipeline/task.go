package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	seqerrors "github.com/vnykmshr/seqflow/pkg/common/errors"
)

// ErrStop is returned by a behavior's OnValue to request that the task run
// its close sequence immediately instead of awaiting further input.
var ErrStop = errors.New("pipeline: stop requested")

// Role describes how a task participates in a pipeline. Roles constrain
// behavior, not structure: a producer only originates deliveries, a filter
// both receives and forwards, a consumer receives and has no downstream.
type Role int

const (
	// RoleProducer originates deliveries from an external source.
	RoleProducer Role = iota

	// RoleFilter receives values and forwards some or all of them.
	RoleFilter

	// RoleConsumer receives values and performs only local finalization on close.
	RoleConsumer
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleProducer:
		return "producer"
	case RoleFilter:
		return "filter"
	case RoleConsumer:
		return "consumer"
	default:
		return "unknown"
	}
}

// State is the position of a task in its lifecycle. Transitions only ever
// run Created -> AwaitingInput -> Running -> AwaitingInput -> ... -> Closed.
type State int

const (
	// StateCreated means constructed but not yet primed.
	StateCreated State = iota

	// StateAwaitingInput means paused at the suspension point, waiting for
	// the next value.
	StateAwaitingInput

	// StateRunning means actively executing between suspension points.
	StateRunning

	// StateClosed is terminal; no further input is accepted.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateAwaitingInput:
		return "awaiting_input"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Emit forwards a value to a task's downstream subscribers in registration
// order. Behaviors receive it at every resumption point.
type Emit[T any] func(T) error

// Behavior is the explicit state-machine rendition of a task body: instead
// of a resumable call stack, local state lives in the behavior's fields and
// the runtime dispatches each input delivery and the close signal to the
// matching resumption branch.
type Behavior[T any] interface {
	// OnValue resumes the task body with one delivered value. Returning
	// ErrStop moves the task straight into its close sequence.
	OnValue(v T, emit Emit[T]) error

	// OnClose runs the task's cleanup branch. It may emit a final aggregated
	// value; the runtime forwards the close signal downstream afterwards.
	OnClose(emit Emit[T]) error
}

// Starter is implemented by behaviors that have work to do at prime time,
// before the first delivery.
type Starter[T any] interface {
	OnStart(emit Emit[T]) error
}

// Hooks observe a task's transitions. All callbacks are optional and run
// synchronously inside the transition they observe.
type Hooks[T any] struct {
	// OnDeliver is called when a value is accepted for processing.
	OnDeliver func(t *Task[T], v T)

	// OnForward is called when the task forwards a value downstream.
	OnForward func(t *Task[T], v T)

	// OnClose is called when the task enters Closed.
	OnClose func(t *Task[T])

	// OnError is called when a delivery or close fails.
	OnError func(t *Task[T], err error)
}

// Task is a cooperatively scheduled unit of computation. It suspends only at
// its input-request point; Deliver and SignalClose resume it synchronously
// and return once it reaches its next suspension point or Closed. A task is
// confined to one goroutine; the runtime never runs two tasks concurrently.
type Task[T any] struct {
	id         string
	name       string
	role       Role
	state      State
	downstream []*Task[T]
	behavior   Behavior[T]
	hooks      Hooks[T]
}

// NewTask creates a task in the Created state.
func NewTask[T any](name string, role Role, behavior Behavior[T]) *Task[T] {
	return &Task[T]{
		id:       uuid.NewString(),
		name:     name,
		role:     role,
		behavior: behavior,
	}
}

// NewFilter creates a filter-role task.
func NewFilter[T any](name string, behavior Behavior[T]) *Task[T] {
	return NewTask(name, RoleFilter, behavior)
}

// NewConsumer creates a consumer-role task.
func NewConsumer[T any](name string, behavior Behavior[T]) *Task[T] {
	return NewTask(name, RoleConsumer, behavior)
}

// ID returns the task's unique identifier.
func (t *Task[T]) ID() string { return t.id }

// Name returns the task's name.
func (t *Task[T]) Name() string { return t.name }

// Role returns the task's role.
func (t *Task[T]) Role() Role { return t.role }

// State returns the task's current lifecycle state.
func (t *Task[T]) State() State { return t.state }

// Downstream returns the task's subscribers in registration order.
func (t *Task[T]) Downstream() []*Task[T] {
	out := make([]*Task[T], len(t.downstream))
	copy(out, t.downstream)
	return out
}

// WithHooks attaches observation hooks and returns the task for chaining.
// Must be called before Prime.
func (t *Task[T]) WithHooks(hooks Hooks[T]) *Task[T] {
	t.hooks = hooks
	return t
}

// Connect appends down to the task's subscriber list. Wiring happens before
// priming; connecting a primed task or adding downstream to a consumer fails.
func (t *Task[T]) Connect(down *Task[T]) error {
	if down == nil {
		return seqerrors.NewValidationError("pipeline", "downstream", nil, "cannot be nil")
	}
	if t.role == RoleConsumer {
		return seqerrors.NewOperationError("pipeline", "Connect", seqerrors.ErrInvalidConfiguration).
			WithContext(t.describe() + " consumers have no downstream")
	}
	if t.state != StateCreated {
		return seqerrors.NewOperationError("pipeline", "Connect", seqerrors.ErrInvalidConfiguration).
			WithContext(t.describe() + " already primed")
	}
	t.downstream = append(t.downstream, down)
	return nil
}

// Prime runs the task body up to its first suspension point, moving the task
// from Created to AwaitingInput. It is called exactly once, before the first
// delivery.
func (t *Task[T]) Prime() error {
	switch t.state {
	case StateClosed:
		return t.fail("Prime", seqerrors.ErrAlreadyClosed)
	case StateAwaitingInput, StateRunning:
		return seqerrors.NewOperationError("pipeline", "Prime", seqerrors.ErrInvalidConfiguration).
			WithContext(t.describe() + " already primed")
	}

	t.state = StateRunning
	if starter, ok := t.behavior.(Starter[T]); ok {
		if err := starter.OnStart(t.emit); err != nil {
			t.state = StateCreated
			return t.wrap("Prime", err)
		}
	}
	t.state = StateAwaitingInput
	return nil
}

// Deliver resumes the task with one value. The call returns only after the
// task has run to its next suspension point, or through its close sequence
// if the body requested a stop. Delivering to a closed task fails with
// ErrAlreadyClosed; delivering before Prime fails with ErrNotPrimed.
func (t *Task[T]) Deliver(v T) error {
	switch t.state {
	case StateClosed:
		return t.fail("Deliver", seqerrors.ErrAlreadyClosed)
	case StateCreated:
		return t.fail("Deliver", seqerrors.ErrNotPrimed)
	case StateRunning:
		return seqerrors.NewOperationError("pipeline", "Deliver", seqerrors.ErrInvalidConfiguration).
			WithContext(t.describe() + " reentrant delivery")
	}

	if t.hooks.OnDeliver != nil {
		t.hooks.OnDeliver(t, v)
	}

	t.state = StateRunning
	err := t.behavior.OnValue(v, t.emit)
	if errors.Is(err, ErrStop) {
		return t.close()
	}
	if err != nil {
		t.state = StateAwaitingInput
		return t.wrap("Deliver", err)
	}
	t.state = StateAwaitingInput
	return nil
}

// SignalClose runs the task's cleanup branch, forwards the close signal to
// every downstream subscriber exactly once in registration order, and moves
// the task to Closed. Closing a closed task fails with ErrAlreadyClosed.
func (t *Task[T]) SignalClose() error {
	switch t.state {
	case StateClosed:
		return t.fail("SignalClose", seqerrors.ErrAlreadyClosed)
	case StateCreated:
		return t.fail("SignalClose", seqerrors.ErrNotPrimed)
	case StateRunning:
		return seqerrors.NewOperationError("pipeline", "SignalClose", seqerrors.ErrInvalidConfiguration).
			WithContext(t.describe() + " reentrant close")
	}
	return t.close()
}

// close runs the cleanup branch and close propagation. The final aggregate,
// if the behavior emits one, reaches downstream before their close signal.
// A downstream member that is already closed is skipped, so a task fed by
// several upstreams receives exactly one close signal. Every remaining
// member is closed even if one of them fails; the first error is reported.
func (t *Task[T]) close() error {
	t.state = StateRunning

	var firstErr error
	if err := t.behavior.OnClose(t.emit); err != nil {
		firstErr = t.wrap("SignalClose", err)
	}

	for _, d := range t.downstream {
		if d.State() == StateClosed {
			continue
		}
		if err := d.SignalClose(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	t.state = StateClosed
	if t.hooks.OnClose != nil {
		t.hooks.OnClose(t)
	}
	if firstErr != nil && t.hooks.OnError != nil {
		t.hooks.OnError(t, firstErr)
	}
	return firstErr
}

// emit forwards a value to each downstream subscriber in registration order,
// synchronously. The first failing delivery aborts the fan-out.
func (t *Task[T]) emit(v T) error {
	if t.hooks.OnForward != nil {
		t.hooks.OnForward(t, v)
	}
	for _, d := range t.downstream {
		if err := d.Deliver(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *Task[T]) describe() string {
	return fmt.Sprintf("task %s %s(%s)", t.id[:8], t.role, t.name)
}

func (t *Task[T]) fail(operation string, cause error) error {
	err := seqerrors.NewOperationError("pipeline", operation, cause).WithContext(t.describe())
	if t.hooks.OnError != nil {
		t.hooks.OnError(t, err)
	}
	return err
}

// wrap adds this task's identity to a behavior error unless it already
// carries one from further downstream.
func (t *Task[T]) wrap(operation string, err error) error {
	var opErr *seqerrors.OperationError
	if errors.As(err, &opErr) {
		return err
	}
	wrapped := seqerrors.NewOperationError("pipeline", operation, err).WithContext(t.describe())
	if t.hooks.OnError != nil {
		t.hooks.OnError(t, wrapped)
	}
	return wrapped
}
