/*
Package streaming offers pull-based processing of sequential data without
materializing it.

This package provides two main streaming components:

  - lazy: Lazily-evaluated, memoized recursive streams with combinators
  - source: Single-pass cursors over external inputs (slices, functions,
    channels, readers, Redis lists)

Basic usage:

	// An infinite stream of integers, squared, first five materialized
	squares := lazy.Map(lazy.Ints(1), func(n int) int { return n * n })
	first, err := lazy.ToSlice(ctx, lazy.Take(squares, 5))

	// A memoized stream over an external input
	words := lazy.FromSource(ctx, source.WordsOf(text))

Streams are immutable once observed: every tail computation runs at most
once and all traversals see the identical nodes. Sources are the opposite,
single-use cursors; wrap one in lazy.FromSource to traverse it repeatedly.
*/
package streaming
