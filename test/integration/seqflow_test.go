package integration

import (
	"strings"
	"testing"

	"github.com/vnykmshr/seqflow/internal/testutil"
	"github.com/vnykmshr/seqflow/pkg/scheduling/pipeline"
	"github.com/vnykmshr/seqflow/pkg/streaming/lazy"
	"github.com/vnykmshr/seqflow/pkg/streaming/source"
)

const sentence = "Commending spending is offending to people pending lending!"

// TestPullAndPushAgree runs the same match over the same text through both
// processing models: the pull-based lazy stream and the push-based pipeline.
// Both must observe identical values in identical order.
func TestPullAndPushAgree(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	// Pull: memoized stream over a single-pass source.
	words := lazy.FromSource(ctx, source.WordsOf(sentence))
	matched := lazy.Filter(func(w string) bool { return strings.Contains(w, "pend") }, words)
	pulled, err := lazy.ToSlice(ctx, matched)
	testutil.AssertNoError(t, err)

	// Push: cooperative pipeline over a fresh source.
	sink := pipeline.Collect[string]()
	entry, err := pipeline.Chain(
		pipeline.NewFilter("match", pipeline.Match("pend")),
		pipeline.NewConsumer("sink", sink),
	)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, pipeline.PrimeAll(entry))
	testutil.AssertNoError(t, pipeline.Pump(ctx, source.WordsOf(sentence), entry))

	testutil.AssertSliceEqual(t, pulled, []string{"spending", "pending"})
	testutil.AssertSliceEqual(t, sink.Values(), pulled)
	testutil.AssertEqual(t, sink.CloseCount(), 1)
}

// TestStreamFeedsPipeline drains a memoized stream into a pipeline, then
// re-traverses the stream to confirm the pipeline run consumed the cached
// nodes rather than the underlying source.
func TestStreamFeedsPipeline(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	counting := testutil.NewCountingSource(strings.Fields(sentence)...)
	words := lazy.FromSource(ctx, counting)

	// First traversal pulls everything from the source.
	all, err := lazy.ToSlice(ctx, words)
	testutil.AssertNoError(t, err)
	pulls := counting.Calls()

	// Feed the cached stream into a pipeline.
	sink := pipeline.Collect[string]()
	entry, err := pipeline.Chain(
		pipeline.NewFilter("match", pipeline.Match("pend")),
		pipeline.NewConsumer("sink", sink),
	)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, pipeline.PrimeAll(entry))
	testutil.AssertNoError(t, pipeline.Pump(ctx, source.FromSlice(all), entry))

	testutil.AssertSliceEqual(t, sink.Values(), []string{"spending", "pending"})
	testutil.AssertEqual(t, counting.Calls(), pulls)

	// The memoized stream is still traversable.
	again, err := lazy.ToSlice(ctx, words)
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, again, all)
	testutil.AssertEqual(t, counting.Calls(), pulls)
}

// TestInfiniteStreamBoundedWork combines an infinite stream with a
// stop-after pipeline: only the requested prefix is ever computed.
func TestInfiniteStreamBoundedWork(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	computed := 0
	squares := lazy.Map(func(n int) int {
		computed++
		return n * n
	}, lazy.Ints(1))

	prefix, err := lazy.ToSlice(ctx, lazy.Take(squares, 5))
	testutil.AssertNoError(t, err)

	sink := pipeline.Collect[int]()
	head, err := pipeline.Chain(
		pipeline.NewFilter("head", pipeline.StopAfter[int](3)),
		pipeline.NewConsumer("sink", sink),
	)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, pipeline.PrimeAll(head))
	testutil.AssertNoError(t, pipeline.Pump(ctx, source.FromSlice(prefix), head))

	testutil.AssertSliceEqual(t, sink.Values(), []int{1, 4, 9})
	testutil.AssertEqual(t, computed, 5)
}
