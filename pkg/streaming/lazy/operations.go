package lazy

import (
	"context"

	seqerrors "github.com/vnykmshr/seqflow/pkg/common/errors"
)

// Map returns a stream of fn applied to each element of s. fn runs only when
// the corresponding position is materialized by a consumer, never eagerly
// across the whole stream.
func Map[T, U any](fn func(T) U, s *Node[T]) *Node[U] {
	return Delay(func() *Node[U] {
		r := s.settle()
		if r == nil {
			return nil
		}
		return Cons(fn(r.head), func() *Node[U] {
			return Map(fn, r.forceTail())
		})
	})
}

// Filter returns a stream of the elements of s matching pred. The search for
// the next match advances iteratively, so skipping arbitrarily many
// non-matching elements costs no call-stack depth. Over an unbounded stream
// with no further match, materializing past the last match never returns;
// constructing the filter and truncating it to zero remain safe.
func Filter[T any](pred func(T) bool, s *Node[T]) *Node[T] {
	return Delay(func() *Node[T] {
		cur := s
		for {
			r := cur.settle()
			if r == nil {
				return nil
			}
			if pred(r.head) {
				return Cons(r.head, func() *Node[T] {
					return Filter(pred, r.forceTail())
				})
			}
			cur = r.forceTail()
		}
	})
}

// Take returns a stream of at most n leading elements of s.
func Take[T any](s *Node[T], n int) *Node[T] {
	return Delay(func() *Node[T] {
		if n <= 0 {
			return nil
		}
		r := s.settle()
		if r == nil {
			return nil
		}
		return Cons(r.head, func() *Node[T] {
			return Take(r.forceTail(), n-1)
		})
	})
}

// ToSlice eagerly materializes s into a slice. Materializing an unbounded
// stream never returns unless the context expires; truncating first is the
// caller's responsibility.
func ToSlice[T any](ctx context.Context, s *Node[T]) ([]T, error) {
	out := []T{}
	err := ForEach(ctx, s, func(v T) {
		out = append(out, v)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach walks s in order, invoking action on each element.
func ForEach[T any](ctx context.Context, s *Node[T], action func(T)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r, err := s.resolve(DefaultMaxResolve)
		if err != nil {
			return seqerrors.NewOperationError("lazy", "ForEach", err)
		}
		if r == nil {
			return nil
		}
		action(r.head)
		s = r.forceTail()
	}
}

// Reduce folds s into a single value, starting from identity.
func Reduce[T, A any](ctx context.Context, s *Node[T], identity A, accumulate func(A, T) A) (A, error) {
	acc := identity
	err := ForEach(ctx, s, func(v T) {
		acc = accumulate(acc, v)
	})
	if err != nil {
		return identity, err
	}
	return acc, nil
}

// Count returns the number of elements of s. Never returns on an unbounded
// stream unless the context expires.
func Count[T any](ctx context.Context, s *Node[T]) (int64, error) {
	var n int64
	err := ForEach(ctx, s, func(T) {
		n++
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
