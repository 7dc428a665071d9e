package aggregators

import (
	"context"
	"errors"
	"time"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/metrics"
	"usage-analytics/internal/shared/svcerrors"
	"usage-analytics/internal/streams"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate parses every file in paths through the worker pool and
	// merges the per-file aggregates into one run total. The first failed
	// file latches the run failure: in-flight parses are cancelled, later
	// outcomes are drained and discarded, and exactly that first error is
	// returned. A failed run exposes no partial totals.
	Aggregate(ctx context.Context, paths []string) (models.UsageAggregate, error)
}

type aggregationService struct {
	parsePool   streams.ParseWorkerPool
	usageMerger UsageMerger
}

func NewAggregationService(parsePool streams.ParseWorkerPool, usageMerger UsageMerger) AggregationService {
	return &aggregationService{parsePool: parsePool, usageMerger: usageMerger}
}

func (s *aggregationService) Aggregate(ctx context.Context, paths []string) (models.UsageAggregate, error) {
	logger := loggers.Ctx(ctx)
	started := time.Now()

	// Workers run on a child context so the first failure can stop the
	// pool without touching the caller's context.
	poolCtx, cancelPool := context.WithCancel(ctx)
	defer cancelPool()

	outcomes := s.parsePool.Run(poolCtx, paths)

	total := models.NewUsageAggregate()
	var firstErr *svcerrors.ServiceError

	for outcome := range outcomes {
		if firstErr != nil {
			metricOutcomesMergedTotal.WithLabelValues(valueDiscarded).Inc()
			continue
		}

		if outcome.Err != nil {
			if isContextError(outcome.Err) {
				// The caller's context is gone; reported once, below.
				metricOutcomesMergedTotal.WithLabelValues(valueCanceled).Inc()
				continue
			}

			firstErr = asServiceError(outcome.Err)
			metricOutcomesMergedTotal.WithLabelValues(firstErr.Code).Inc()
			logger.Error().
				Err(outcome.Err).
				Str(loggers.FieldFile, outcome.File).
				Str(loggers.FieldErrorCode, firstErr.Code).
				Msg("aborting run on failed file")
			cancelPool()
			continue
		}

		if svcErr := s.usageMerger.Merge(total, outcome.Usage); svcErr != nil {
			firstErr = svcErr
			metricOutcomesMergedTotal.WithLabelValues(svcErr.Code).Inc()
			logger.Error().
				Err(svcErr).
				Str(loggers.FieldFile, outcome.File).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("aborting run on merge failure")
			cancelPool()
			continue
		}

		metricOutcomesMergedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	}

	duration := time.Since(started)

	if firstErr != nil {
		metricRunSeconds.WithLabelValues(firstErr.Code).Observe(duration.Seconds())
		return nil, firstErr
	}

	// A cancelled caller context means dispatch may have stopped early, so
	// the totals cannot be trusted.
	if err := ctx.Err(); err != nil {
		metricRunSeconds.WithLabelValues(valueCanceled).Observe(duration.Seconds())
		return nil, err
	}

	metricRunSeconds.WithLabelValues(metrics.ValueNoError).Observe(duration.Seconds())
	logger.Info().
		Dur(loggers.FieldDuration, duration).
		Int(loggers.FieldFiles, len(paths)).
		Int(loggers.FieldOwners, len(total)).
		Msg("run aggregation complete")

	return total, nil
}

// asServiceError normalizes outcome errors for latching. Worker outcomes
// carry service errors by construction; anything else is undefined.
func asServiceError(err error) *svcerrors.ServiceError {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr
	}
	return svcerrors.NewInternalErrorUndefined(err)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
