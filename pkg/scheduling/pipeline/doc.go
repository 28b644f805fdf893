// Package pipeline provides a cooperative task runtime: single-goroutine
// coroutine-style tasks wired into multicast graphs and driven synchronously
// by a pump.
//
// # Tasks
//
// A Task is a unit of computation with one suspension point: its input
// request. Instead of a resumable call stack, a task's body is a Behavior —
// OnValue resumes it with one delivered value, OnClose runs its cleanup
// branch. Local state lives in the behavior's fields and survives across
// deliveries, which gives coroutine semantics with an explicit, inspectable
// state machine:
//
//	Created -> AwaitingInput -> Running -> AwaitingInput -> ... -> Closed
//
// Prime moves a task to its first suspension point. Deliver and SignalClose
// resume it synchronously: the call returns only once the task (and any
// downstream work it triggered) has finished. Deliveries to a closed task
// fail with ErrAlreadyClosed; deliveries before Prime fail with ErrNotPrimed.
//
// # Graphs
//
// Connect subscribes one task to another's output. A forwarding task emits
// to all of its subscribers in registration order, and forwards its close
// signal to each exactly once, so multicast fan-out and shutdown are both
// deterministic:
//
//	match, _ := pipeline.Chain(
//		pipeline.NewFilter("match", pipeline.Match("pend")),
//		pipeline.NewConsumer("print", pipeline.Sink(func(w string) { fmt.Println(w) })),
//	)
//
// # Pumps
//
// Pump drains a source and delivers each value to every entry task before
// advancing, then closes the entries in order. Producer couples one entry
// task with its source for linear pipelines. MetricsPump adds Prometheus
// counters and timings, and CronPump rebuilds and runs a pipeline on a cron
// schedule.
//
// Everything here is cooperatively scheduled on the calling goroutine: no
// locks, no channels, no concurrent task execution.
package pipeline
