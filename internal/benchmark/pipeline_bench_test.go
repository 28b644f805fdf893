package benchmark

import (
	"context"
	"strconv"
	"testing"

	"github.com/vnykmshr/seqflow/pkg/scheduling/pipeline"
	"github.com/vnykmshr/seqflow/pkg/streaming/source"
)

// BenchmarkPump measures a linear filter/consumer pipeline end to end,
// including graph construction, priming, and close propagation.
func BenchmarkPump(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		data := make([]int, size)
		for i := range data {
			data[i] = i
		}

		b.Run(sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				entry, err := pipeline.Chain(
					pipeline.NewFilter("even", pipeline.FilterFunc(func(n int) bool { return n%2 == 0 })),
					pipeline.NewConsumer("sink", pipeline.Sink(func(int) {})),
				)
				if err != nil {
					b.Fatal(err)
				}
				if err := pipeline.PrimeAll(entry); err != nil {
					b.Fatal(err)
				}
				if err := pipeline.Pump(context.Background(), source.FromSlice(data), entry); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDeliver measures a single task resumption.
func BenchmarkDeliver(b *testing.B) {
	task := pipeline.NewConsumer("sink", pipeline.Sink(func(int) {}))
	if err := pipeline.PrimeAll(task); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := task.Deliver(i); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMulticast measures fan-out to a varying number of entry tasks.
func BenchmarkMulticast(b *testing.B) {
	data := make([]int, 1000)
	for i := range data {
		data[i] = i
	}

	for _, fanout := range []int{1, 4, 16} {
		b.Run(strconv.Itoa(fanout), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				entries := make([]*pipeline.Task[int], fanout)
				for j := range entries {
					entries[j] = pipeline.NewConsumer("sink", pipeline.Sink(func(int) {}))
				}
				if err := pipeline.PrimeAll(entries...); err != nil {
					b.Fatal(err)
				}
				if err := pipeline.Pump(context.Background(), source.FromSlice(data), entries...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
