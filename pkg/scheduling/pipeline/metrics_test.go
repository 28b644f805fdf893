package pipeline

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/seqflow/internal/testutil"
	"github.com/vnykmshr/seqflow/pkg/metrics"
	"github.com/vnykmshr/seqflow/pkg/streaming/source"
)

func TestMetricsPumpCounts(t *testing.T) {
	mp := NewMetricsPump[string]("words", metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	})
	reg := mp.Registry()

	sink := Collect[string]()
	match := mp.Instrument(NewFilter("match", Match("pend")))
	consumer := mp.Instrument(NewConsumer("sink", sink))
	testutil.AssertNoError(t, match.Connect(consumer))
	testutil.AssertNoError(t, PrimeAll(match))

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.TasksOpen.WithLabelValues("words")), 2.0)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()
	testutil.AssertNoError(t, mp.Pump(ctx, source.WordsOf(sentence), match))

	testutil.AssertSliceEqual(t, sink.Values(), []string{"spending", "pending"})

	// One delivery per word, one forward per match, one close per task.
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.PumpRuns.WithLabelValues("words")), 1.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.PipelineDeliveries.WithLabelValues("words")), 8.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.PipelineForwards.WithLabelValues("words", "filter")), 2.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.PipelineCloses.WithLabelValues("words")), 2.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.TasksOpen.WithLabelValues("words")), 0.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.PipelineFailures.WithLabelValues("words")), 0.0)
}

func TestMetricsPumpDisabled(t *testing.T) {
	mp := NewMetricsPump[string]("off", metrics.Config{Enabled: false})
	if mp.Registry() != nil {
		t.Fatal("disabled pump should carry no registry")
	}

	sink := Collect[string]()
	entry := mp.Instrument(NewConsumer("sink", sink))
	testutil.AssertNoError(t, PrimeAll(entry))

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()
	testutil.AssertNoError(t, mp.Pump(ctx, source.WordsOf(sentence), entry))
	testutil.AssertEqual(t, len(sink.Values()), 8)
}

func TestMetricsPumpCountsFailures(t *testing.T) {
	mp := NewMetricsPump[string]("fail", metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	})
	reg := mp.Registry()

	entry := mp.Instrument(NewConsumer("sink", Collect[string]()))
	// Not primed: every delivery fails.
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()
	testutil.AssertError(t, mp.Pump(ctx, source.WordsOf(sentence), entry))

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.PipelineFailures.WithLabelValues("fail")), 1.0)
}
