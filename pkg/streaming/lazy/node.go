package lazy

import (
	"sync"

	seqerrors "github.com/vnykmshr/seqflow/pkg/common/errors"
)

// DefaultMaxResolve bounds how many stacked suspensions an accessor will
// resolve before reporting ErrDepthExceeded. A well-formed stream settles to
// a concrete cell in a handful of hops (one per combinator layer); a chain
// that exceeds this limit is cyclic or runaway.
const DefaultMaxResolve = 1 << 16

// Thunk is a zero-argument deferred tail computation. The engine invokes it
// at most once per node and caches the result.
type Thunk[T any] func() *Node[T]

// Node is one cell of a lazily computed, memoized, singly linked sequence.
// A nil *Node is the canonical empty stream.
//
// A node is either a cons cell (a head value plus a deferred tail) or a
// suspension (a whole-node computation whose result, including emptiness, is
// not yet known). Both forms are immutable after construction except for the
// one-time transition of their cache from absent to present, which is
// guarded by sync.Once so concurrent accessors run the deferred computation
// exactly once and observe the identical cached result.
type Node[T any] struct {
	once sync.Once

	// cons cell form
	head  T
	thunk Thunk[T]
	tail  *Node[T]

	// suspension form; isSusp is set at construction and never changes
	isSusp bool
	susp   func() *Node[T]
	forced *Node[T]
}

// Empty returns the canonical empty stream.
func Empty[T any]() *Node[T] {
	return nil
}

// Cons creates a non-empty node with the given head and deferred tail. The
// thunk runs at most once, on first tail access; a nil thunk means the tail
// is empty.
func Cons[T any](head T, tail Thunk[T]) *Node[T] {
	return &Node[T]{head: head, thunk: tail}
}

// Delay creates a node whose entire content, including whether it is empty,
// is computed on first access. The computation runs at most once; every
// accessor observes the identical result. Delay is what lets combinators
// return without inspecting their input.
func Delay[T any](compute func() *Node[T]) *Node[T] {
	return &Node[T]{isSusp: true, susp: compute}
}

// settle resolves stacked suspensions until it reaches a concrete cell or
// the empty stream. Unbounded; internal callers that cannot propagate errors
// use it directly.
func (n *Node[T]) settle() *Node[T] {
	for n != nil && n.isSusp {
		n.once.Do(func() {
			n.forced = n.susp()
			n.susp = nil
		})
		n = n.forced
	}
	return n
}

// resolve is settle with a hop limit, converting cyclic or runaway
// suspension chains into ErrDepthExceeded.
func (n *Node[T]) resolve(limit int) (*Node[T], error) {
	hops := 0
	for n != nil && n.isSusp {
		if hops >= limit {
			return nil, seqerrors.ErrDepthExceeded
		}
		hops++
		n.once.Do(func() {
			n.forced = n.susp()
			n.susp = nil
		})
		n = n.forced
	}
	return n, nil
}

// forceTail runs the deferred tail computation at most once and returns the
// cached tail. The receiver must be a settled, non-nil cons cell.
func (n *Node[T]) forceTail() *Node[T] {
	n.once.Do(func() {
		if n.thunk != nil {
			n.tail = n.thunk()
			n.thunk = nil
		}
	})
	return n.tail
}

// IsEmpty reports whether the stream is empty, resolving suspensions as
// needed to find out.
func (n *Node[T]) IsEmpty() bool {
	r, err := n.resolve(DefaultMaxResolve)
	if err != nil {
		// A chain that never settles is not the canonical empty stream.
		return false
	}
	return r == nil
}

// Head returns the first value of the stream. Requesting the head of an
// empty stream fails with ErrEmptyStream.
func (n *Node[T]) Head() (T, error) {
	var zero T

	r, err := n.resolve(DefaultMaxResolve)
	if err != nil {
		return zero, seqerrors.NewOperationError("lazy", "Head", err)
	}
	if r == nil {
		return zero, seqerrors.NewOperationError("lazy", "Head", seqerrors.ErrEmptyStream)
	}
	return r.head, nil
}

// Tail returns the rest of the stream, running the deferred tail computation
// on first access and the memo cache on every access after that. Repeated
// calls return the identical node. Requesting the tail of an empty stream
// fails with ErrEmptyStream.
func (n *Node[T]) Tail() (*Node[T], error) {
	r, err := n.resolve(DefaultMaxResolve)
	if err != nil {
		return nil, seqerrors.NewOperationError("lazy", "Tail", err)
	}
	if r == nil {
		return nil, seqerrors.NewOperationError("lazy", "Tail", seqerrors.ErrEmptyStream)
	}
	return r.forceTail(), nil
}
