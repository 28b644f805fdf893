/*
Package lazy provides a lazily computed, memoized, singly linked stream:
a pull-based model for processing sequential data, including unbounded
series, without materializing it.

Core Concepts:

A stream is a chain of nodes. Each node holds a head value and a deferred
tail computation (a thunk) that produces the next node only when a consumer
asks for it. The result is cached, so:
  - every position is computed at most once, no matter how many times the
    stream is traversed;
  - repeated traversals of the same node yield identical values, making
    streams multi-pass, unlike single-use cursors;
  - memory is bounded by the prefix a consumer actually holds onto - nodes
    before the earliest live reference are collected.

The empty stream is the nil *Node. Asking an empty stream for its head or
tail fails with errors.ErrEmptyStream.

Basic Usage:

	// An unbounded stream of integers
	ints := lazy.Ints(1)

	// Lazy transformation and truncation
	squares := lazy.Map(func(x int) int { return x * x }, ints)
	firstFive := lazy.Take(squares, 5)

	// Eager materialization (the only point where work happens)
	result, err := lazy.ToSlice(context.Background(), firstFive)
	// result == [1 4 9 16 25]

Construction:

	lazy.Empty[int]()          // the empty stream
	lazy.Cons(1, thunk)        // explicit head + deferred tail
	lazy.Delay(compute)        // defer the entire node, including emptiness
	lazy.Ints(from)            // unbounded integers
	lazy.FromSlice(slice)      // finite stream over a slice
	lazy.FromSource(ctx, src)  // memoized view over a single-pass Source
	lazy.Primes()              // sieve of Eratosthenes

Combinators:

	lazy.Map(fn, s)      // element-wise transformation, applied on demand
	lazy.Filter(pred, s) // keep matching elements; skips iteratively
	lazy.Take(s, n)      // at most n leading elements

Terminal operations:

	lazy.ToSlice(ctx, s)
	lazy.ForEach(ctx, s, action)
	lazy.Reduce(ctx, s, identity, accumulate)
	lazy.Count(ctx, s)

Unbounded Streams:

Combinators never walk further than the consumer demands, so unbounded
streams compose freely:

	primes := lazy.Primes()
	first, _ := lazy.ToSlice(ctx, lazy.Take(primes, 100))

Materializing an unbounded stream without truncating it first never returns;
that is documented behavior, not an error the engine detects. The context
passed to terminal operations is the caller's way to bound such a walk by
deadline rather than by element count.

Filter deserves care on sparse predicates: finding the next match advances
the underlying stream iteratively, so skipping a million non-matching
elements costs a million loop iterations but no call-stack depth. The skip
happens inside a single node computation and does not observe the context;
if no further match exists, materializing past the last one loops forever.
Constructing the filter and truncating it to zero are always safe.

Concurrency:

A node's deferred computation is single-flight: concurrent accessors of the
same tail run the thunk exactly once and all observe the identical cached
node. The cache transition is the only mutation a node ever undergoes.

Metrics:

Wrap a stream with a Meter to publish node and thunk counters to Prometheus:

	meter := lazy.NewMeter[int]("integers", metrics.DefaultConfig())
	observed := meter.Stream(lazy.Take(lazy.Ints(1), 100))
	result, err := meter.ToSlice(ctx, observed)
*/
package lazy
