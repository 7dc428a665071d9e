package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"usage-analytics/internal/events"
	"usage-analytics/internal/parsers"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/metrics"
	"usage-analytics/internal/shared/svcerrors"
)

// ParseWorkerPool fans a set of log files out to a fixed number of parser
// goroutines and streams one FileUsageOutcome per file back to the caller.
//
// Ownership model for race-free aggregation:
//
// Each file is parsed into its own per-file aggregate, owned exclusively by
// the worker parsing it. Ownership transfers to the consumer when the
// outcome is sent, so no aggregate is ever visible to two goroutines at
// once and no locking is needed anywhere in the pipeline.
//
// Dispatch is a bounded jobs channel fed by a feeder goroutine: every path
// is queued, and when the queue is full the feeder blocks until a worker
// frees a slot. Runs with more files than workers therefore process every
// file; nothing is dropped.
//
//go:generate mockgen -source=parse_worker_pool.go -destination=./mocks/parse_worker_pool_mock.go -package=mocks
type ParseWorkerPool interface {
	// Run dispatches every path to the pool and returns the outcome stream.
	// The stream closes after one outcome per parsed file; the caller must
	// drain it until closed. Cancelling ctx stops dispatch, so a cancelled
	// run closes early with fewer outcomes.
	Run(ctx context.Context, paths []string) <-chan events.FileUsageOutcome
}

type parseWorkerPool struct {
	fileParser parsers.FileParser
	workers    int
	queueSize  int

	logger loggers.Logger
}

func NewParseWorkerPool(fileParser parsers.FileParser, workers, queueSize int, logger loggers.Logger) ParseWorkerPool {
	return &parseWorkerPool{
		fileParser: fileParser,
		workers:    workers,
		queueSize:  queueSize,
		logger:     logger,
	}
}

func (pool *parseWorkerPool) Run(ctx context.Context, paths []string) <-chan events.FileUsageOutcome {
	jobs := make(chan string, pool.queueSize)
	outcomes := make(chan events.FileUsageOutcome, pool.workers)

	var wg sync.WaitGroup
	for workerIndex := 0; workerIndex < pool.workers; workerIndex++ {
		workerIndex := workerIndex
		wg.Add(1)
		go func() {
			defer wg.Done()

			pool.runWorker(ctx, workerIndex, jobs, outcomes)
		}()
	}

	// Feeder: queue every path, blocking on a full queue.
	go func() {
		defer close(jobs)

		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	// Closer: the outcome stream ends once every worker has drained the queue.
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	return outcomes
}

func (pool *parseWorkerPool) runWorker(ctx context.Context, workerIndex int, jobs <-chan string, outcomes chan<- events.FileUsageOutcome) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-jobs:
			if !ok {
				return
			}
			outcomes <- pool.parseFile(ctx, workerIndex, path)
		}
	}
}

func (pool *parseWorkerPool) parseFile(ctx context.Context, workerIndex int, path string) (outcome events.FileUsageOutcome) {
	outcome = events.FileUsageOutcome{File: path}

	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("parse worker panic recovered")

			// Convert panic value to error
			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			outcome.Usage = nil
			outcome.Err = svcErr
			metricParseOutcomesTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	ctx = pool.logger.With().
		Str(loggers.FieldWorkerID, fmt.Sprintf("%d", workerIndex)).
		Str(loggers.FieldFile, path).
		Logger().WithContext(ctx)

	started := time.Now()
	usage, err := pool.fileParser.Parse(ctx, path)
	duration := time.Since(started)

	if err != nil {
		errorCode := valueCanceled
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			errorCode = svcErr.Code
		}
		metricParseOutcomesTotal.WithLabelValues(errorCode).Inc()
		metricFileParseSeconds.WithLabelValues(errorCode).Observe(duration.Seconds())

		loggers.Ctx(ctx).Warn().
			Err(err).
			Str(loggers.FieldErrorCode, errorCode).
			Msg("log file parse failed")

		outcome.Err = err
		return outcome
	}

	metricParseOutcomesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricFileParseSeconds.WithLabelValues(metrics.ValueNoError).Observe(duration.Seconds())

	loggers.Ctx(ctx).Debug().
		Dur(loggers.FieldDuration, duration).
		Int(loggers.FieldOwners, len(usage)).
		Msg("log file parsed")

	outcome.Usage = usage
	return outcome
}
