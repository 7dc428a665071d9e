package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"usage-analytics/internal/aggregators"
	"usage-analytics/internal/formatters"
	internalhttp "usage-analytics/internal/http"
	"usage-analytics/internal/parsers"
	"usage-analytics/internal/shared/configs"
	"usage-analytics/internal/shared/logdirs"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/ulid"
	"usage-analytics/internal/streams"
)

// metricsShutdownTimeout bounds how long the debug server gets to drain on shutdown.
const metricsShutdownTimeout = 5 * time.Second

// Options holds the per-run inputs supplied on the command line.
type Options struct {
	LogDir    string
	Formatter string
}

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	options   Options
	appLogger loggers.Logger

	aggregationService aggregators.AggregationService
	formatter          formatters.Formatter

	metricsServer *http.Server // nil when metrics are disabled
}

// New creates and initializes a new App instance.
func New(config *configs.Config, options Options) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "usage-analytics").
		Logger()

	// Initialize report formatter
	formatter, err := formatters.Resolve(options.Formatter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize formatter: %w", err)
	}

	// Initialize parse worker pool
	fileParser := parsers.NewFileParser()
	poolLogger := appLogger.With().Str(loggers.FieldComponent, "stream").Logger()
	parsePool := streams.NewParseWorkerPool(fileParser, config.Parser.Workers, config.Parser.QueueSize, poolLogger)

	// Initialize aggregation service
	usageMerger := aggregators.NewUsageMerger()
	aggregationService := aggregators.NewAggregationService(parsePool, usageMerger)

	// Create debug HTTP server when metrics are enabled
	var metricsServer *http.Server
	if config.Metrics.Enabled {
		httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", config.Metrics.Port),
			Handler:           internalhttp.NewRouter(httpLogger),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return &App{
		config:             config,
		options:            options,
		appLogger:          appLogger,
		aggregationService: aggregationService,
		formatter:          formatter,
		metricsServer:      metricsServer,
	}, nil
}

// Run executes one aggregation run over the configured log directory and
// returns the formatted report. The report is returned rather than emitted;
// the command layer decides where it goes.
func (app *App) Run(ctx context.Context) (string, error) {
	logger := app.appLogger.With().
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()
	ctx = logger.With().Str(loggers.FieldComponent, "coordinator").Logger().WithContext(ctx)

	app.startMetricsServer(logger)
	defer app.stopMetricsServer(logger)

	logger.Info().
		Msgf("Starting usage-analytics run on %s (formatter=%s, workers=%d)",
			app.options.LogDir,
			app.formatter.Name(),
			app.config.Parser.Workers)

	started := time.Now()

	paths, err := logdirs.ListLogFiles(app.options.LogDir)
	if err != nil {
		return "", errLogDirUnreadable(app.options.LogDir, err)
	}
	if len(paths) == 0 {
		return "", errNoLogFiles(app.options.LogDir)
	}

	usage, err := app.aggregationService.Aggregate(ctx, paths)
	if err != nil {
		return "", err
	}

	report, err := app.formatter.Format(usage)
	if err != nil {
		return "", err
	}

	logger.Info().
		Dur(loggers.FieldDuration, time.Since(started)).
		Msg("Run finished")

	return report, nil
}

// startMetricsServer serves /healthz and /metrics for the lifetime of the run.
func (app *App) startMetricsServer(logger loggers.Logger) {
	if app.metricsServer == nil {
		return
	}

	logger.Info().Msgf("Serving debug endpoints on %s", app.metricsServer.Addr)
	go func() {
		if err := app.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Debug server failed")
		}
	}()
}

// stopMetricsServer gracefully shuts down the debug server.
func (app *App) stopMetricsServer(logger loggers.Logger) {
	if app.metricsServer == nil {
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := app.metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Debug server shutdown failed")
	}
}
