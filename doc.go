/*
Package seqflow provides a Go library for processing sequential data without
materializing it, via lazy memoized streams and cooperative pipelines.

Streaming (pkg/streaming):
  - lazy: Lazily-evaluated, memoized recursive streams (pull-based)
  - source: Single-pass cursors over slices, functions, channels, readers,
    and Redis lists

Scheduling (pkg/scheduling):
  - pipeline: Coroutine-style tasks, multicast pumps, cron-scheduled runs
    (push-based)

Observability (pkg/metrics):
  - Prometheus instrumentation for streams and pipelines

Example usage:

	import (
		"github.com/vnykmshr/seqflow/pkg/streaming/lazy"
		"github.com/vnykmshr/seqflow/pkg/scheduling/pipeline"
		"github.com/vnykmshr/seqflow/pkg/streaming/source"
	)

	// Pull: the first ten primes, computed on demand and cached
	primes, _ := lazy.ToSlice(ctx, lazy.Take(lazy.Primes(), 10))

	// Push: match words as they arrive, then close downstream exactly once
	sink := pipeline.Collect[string]()
	entry, _ := pipeline.Chain(
		pipeline.NewFilter("match", pipeline.Match("pend")),
		pipeline.NewConsumer("sink", sink),
	)
	pipeline.PrimeAll(entry)
	pipeline.Pump(ctx, source.WordsOf(text), entry)

The two models are independent and solve the same problem from opposite
directions: streams pull and memoize, pipelines push and forget.
*/
package seqflow
