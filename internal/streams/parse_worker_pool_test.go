package streams_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"usage-analytics/internal/events"
	"usage-analytics/internal/models"
	parsermocks "usage-analytics/internal/parsers/mocks"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/svcerrors"
	"usage-analytics/internal/streams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRun_MoreFilesThanWorkers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paths := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		paths = append(paths, fmt.Sprintf("/logs/file_%02d.log", i))
	}

	fileParser := parsermocks.NewMockFileParser(ctrl)
	fileParser.EXPECT().
		Parse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path string) (models.UsageAggregate, error) {
			usage := models.NewUsageAggregate()
			usage.Owner(1)
			return usage, nil
		}).
		Times(len(paths))

	logger, _ := loggers.New("info")
	pool := streams.NewParseWorkerPool(fileParser, 3, 2, logger)

	outcomes := collectOutcomes(t, pool.Run(context.Background(), paths))
	require.Len(t, outcomes, len(paths), "every queued file must produce exactly one outcome")

	seen := make(map[string]bool, len(outcomes))
	for _, outcome := range outcomes {
		require.NoError(t, outcome.Err)
		require.NotNil(t, outcome.Usage)
		seen[outcome.File] = true
	}
	for _, path := range paths {
		assert.True(t, seen[path], "missing outcome for %s", path)
	}
}

func TestRun_ErrorOutcomesPassThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parseErr := svcerrors.NewMalformedInputError("PARSE_1000", "no query string found in log line", nil)

	fileParser := parsermocks.NewMockFileParser(ctrl)
	fileParser.EXPECT().
		Parse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path string) (models.UsageAggregate, error) {
			if path == "/logs/bad.log" {
				return nil, parseErr
			}
			return models.NewUsageAggregate(), nil
		}).
		Times(3)

	logger, _ := loggers.New("info")
	pool := streams.NewParseWorkerPool(fileParser, 2, 4, logger)

	paths := []string{"/logs/good_a.log", "/logs/bad.log", "/logs/good_b.log"}
	outcomes := collectOutcomes(t, pool.Run(context.Background(), paths))
	require.Len(t, outcomes, 3)

	var failed []events.FileUsageOutcome
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed = append(failed, outcome)
		}
	}
	require.Len(t, failed, 1)
	assert.Equal(t, "/logs/bad.log", failed[0].File)
	assert.Nil(t, failed[0].Usage)

	svcErr, ok := svcerrors.AsServiceError(failed[0].Err)
	require.True(t, ok)
	assert.Equal(t, "PARSE_1000", svcErr.Code)
}

func TestRun_NoFiles(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileParser := parsermocks.NewMockFileParser(ctrl)

	logger, _ := loggers.New("info")
	pool := streams.NewParseWorkerPool(fileParser, 5, 16, logger)

	outcomes := collectOutcomes(t, pool.Run(context.Background(), nil))
	assert.Empty(t, outcomes)
}

func TestRun_WorkerPanicBecomesInternalOutcome(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileParser := parsermocks.NewMockFileParser(ctrl)
	fileParser.EXPECT().
		Parse(gomock.Any(), "/logs/poison.log").
		DoAndReturn(func(_ context.Context, _ string) (models.UsageAggregate, error) {
			panic("poison file")
		})

	logger, _ := loggers.New("info")
	pool := streams.NewParseWorkerPool(fileParser, 1, 1, logger)

	outcomes := collectOutcomes(t, pool.Run(context.Background(), []string{"/logs/poison.log"}))
	require.Len(t, outcomes, 1, "a panicking worker must still deliver its outcome")

	outcome := outcomes[0]
	assert.Equal(t, "/logs/poison.log", outcome.File)
	assert.Nil(t, outcome.Usage)

	svcErr, ok := svcerrors.AsServiceError(outcome.Err)
	require.True(t, ok)
	assert.True(t, svcErr.IsInternalError())
	assert.Equal(t, "SYS_9000", svcErr.Code)
}

func TestRun_CancelledRunClosesStream(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fileParser := parsermocks.NewMockFileParser(ctrl)
	fileParser.EXPECT().
		Parse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(parseCtx context.Context, _ string) (models.UsageAggregate, error) {
			cancel()
			return nil, parseCtx.Err()
		}).
		MinTimes(1)

	logger, _ := loggers.New("info")
	pool := streams.NewParseWorkerPool(fileParser, 1, 1, logger)

	paths := []string{"/logs/a.log", "/logs/b.log", "/logs/c.log", "/logs/d.log", "/logs/e.log"}
	outcomes := collectOutcomes(t, pool.Run(ctx, paths))

	// Dispatch stops once the context is gone; the stream still closes.
	assert.LessOrEqual(t, len(outcomes), len(paths))
	assert.GreaterOrEqual(t, len(outcomes), 1)
}

// collectOutcomes drains the stream, failing the test if it never closes.
func collectOutcomes(t *testing.T, stream <-chan events.FileUsageOutcome) []events.FileUsageOutcome {
	t.Helper()

	var outcomes []events.FileUsageOutcome
	timeout := time.After(5 * time.Second)
	for {
		select {
		case outcome, ok := <-stream:
			if !ok {
				return outcomes
			}
			outcomes = append(outcomes, outcome)
		case <-timeout:
			t.Fatal("outcome stream did not close in time")
			return nil
		}
	}
}
