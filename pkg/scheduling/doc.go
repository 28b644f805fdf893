/*
Package scheduling provides cooperative task execution primitives for
push-based data processing.

This package offers one main component:

  - pipeline: Coroutine-style tasks with explicit suspension points,
    multicast graphs, synchronous pumps, and cron-scheduled runs

Pipeline:

Tasks exchange values through explicit deliver/close resumptions rather
than a supervising call stack:

	sink := pipeline.Collect[string]()
	entry, _ := pipeline.Chain(
		pipeline.NewFilter("match", pipeline.Match("pend")),
		pipeline.NewConsumer("sink", sink),
	)

	pipeline.PrimeAll(entry)
	pipeline.Pump(ctx, source.WordsOf(text), entry)

Scheduled runs rebuild the graph each firing:

	cp := pipeline.NewCronPump(factory)
	cp.Schedule("@hourly")
	cp.Start()

Everything is cooperatively scheduled on the calling goroutine; only
CronPump starts a scheduler goroutine of its own.
*/
package scheduling
