package lazy

import (
	"context"

	"github.com/vnykmshr/seqflow/pkg/streaming/source"
)

// Ints returns the unbounded stream of integers from, from+1, from+2, ...
func Ints(from int) *Node[int] {
	return Cons(from, func() *Node[int] {
		return Ints(from + 1)
	})
}

// FromSlice returns a stream of the elements of slice in order.
func FromSlice[T any](slice []T) *Node[T] {
	if len(slice) == 0 {
		return nil
	}
	rest := slice[1:]
	return Cons(slice[0], func() *Node[T] {
		return FromSlice(rest)
	})
}

// FromSource wraps a single-pass Source in a memoized stream: each value is
// pulled at most once, on the first traversal that reaches its position, and
// replayed from the cache on every later traversal. The stream ends at
// end-of-input; a source error or context cancellation also ends it, since a
// deferred tail has no error channel - callers needing per-value error
// reporting should drive the source through the pipeline runtime instead.
func FromSource[T any](ctx context.Context, src source.Source[T]) *Node[T] {
	return Delay(func() *Node[T] {
		v, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return nil
		}
		return Cons(v, func() *Node[T] {
			return FromSource(ctx, src)
		})
	})
}

// Primes returns the unbounded stream of prime numbers via the sieve of
// Eratosthenes: each prime found filters its multiples out of the rest of
// the integers. Memory use is bounded by the prefix actually consumed.
func Primes() *Node[int] {
	return sieve(Ints(2))
}

func sieve(s *Node[int]) *Node[int] {
	return Delay(func() *Node[int] {
		r := s.settle()
		if r == nil {
			return nil
		}
		p := r.head
		return Cons(p, func() *Node[int] {
			return sieve(Filter(func(x int) bool { return x%p != 0 }, r.forceTail()))
		})
	})
}
