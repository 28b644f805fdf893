package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	seqerrors "github.com/vnykmshr/seqflow/pkg/common/errors"
	"github.com/vnykmshr/seqflow/pkg/streaming/source"
)

// PipelineFactory builds a fresh source and task graph for one scheduled
// run. Tasks are single-use once closed, so each run gets its own graph.
// The returned slice holds the entry tasks in multicast order.
type PipelineFactory[T any] func() (source.Source[T], []*Task[T], error)

// CronConfig holds configuration for a scheduled pipeline.
type CronConfig struct {
	// WithSeconds enables the optional seconds field in cron expressions.
	WithSeconds bool

	// Location is the timezone for cron expression evaluation.
	// Defaults to time.Local.
	Location *time.Location

	// OnRun is called after each run with its error, if any.
	OnRun func(err error)
}

// CronPump runs a pipeline on a cron schedule. Each firing builds a fresh
// graph from the factory, primes it, pumps the source through it, and
// closes the source.
//
// Supports standard cron format and descriptors:
//
//	"*/5 * * * *"  - every 5 minutes
//	"30 14 * * 1-5" - 2:30 PM on weekdays
//	"@hourly"       - every hour
//	"@every 30s"    - fixed 30 second interval
type CronPump[T any] struct {
	factory PipelineFactory[T]
	config  CronConfig
	cron    *cron.Cron

	mu      sync.Mutex
	runs    int
	lastErr error
}

// NewCronPump creates a scheduled pipeline with default configuration.
func NewCronPump[T any](factory PipelineFactory[T]) *CronPump[T] {
	return NewCronPumpWithConfig(factory, CronConfig{})
}

// NewCronPumpWithConfig creates a scheduled pipeline with custom configuration.
func NewCronPumpWithConfig[T any](factory PipelineFactory[T], config CronConfig) *CronPump[T] {
	opts := []cron.Option{}
	if config.WithSeconds {
		opts = append(opts, cron.WithSeconds())
	}
	if config.Location != nil {
		opts = append(opts, cron.WithLocation(config.Location))
	}
	return &CronPump[T]{
		factory: factory,
		config:  config,
		cron:    cron.New(opts...),
	}
}

// Schedule registers the pipeline to run on the given cron expression.
// It may be called multiple times to run the same factory on several
// schedules.
func (cp *CronPump[T]) Schedule(spec string) error {
	if cp.factory == nil {
		return seqerrors.NewValidationError("pipeline", "factory", nil, "cannot be nil")
	}
	if _, err := cp.cron.AddFunc(spec, cp.runOnce); err != nil {
		return seqerrors.NewValidationError("pipeline", "spec", spec, err.Error()).
			WithHint("use standard cron format or a descriptor such as @hourly")
	}
	return nil
}

// Start begins executing scheduled runs. Runs execute in the cron
// scheduler's goroutine, one at a time.
func (cp *CronPump[T]) Start() {
	cp.cron.Start()
}

// Stop halts scheduling. The returned context is done once any in-flight
// run has finished.
func (cp *CronPump[T]) Stop() context.Context {
	return cp.cron.Stop()
}

// Runs returns how many scheduled runs have completed.
func (cp *CronPump[T]) Runs() int {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.runs
}

// LastError returns the error from the most recent run, or nil.
func (cp *CronPump[T]) LastError() error {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.lastErr
}

func (cp *CronPump[T]) runOnce() {
	err := cp.pumpFresh()

	cp.mu.Lock()
	cp.runs++
	cp.lastErr = err
	cp.mu.Unlock()

	if cp.config.OnRun != nil {
		cp.config.OnRun(err)
	}
}

func (cp *CronPump[T]) pumpFresh() error {
	src, entries, err := cp.factory()
	if err != nil {
		return seqerrors.NewOperationError("pipeline", "CronPump", err)
	}
	defer src.Close()

	if err := PrimeAll(entries...); err != nil {
		return err
	}
	return Pump(context.Background(), src, entries...)
}
