package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"usage-analytics/internal/app"
	"usage-analytics/internal/formatters"
	"usage-analytics/internal/shared/configs"
	"usage-analytics/internal/shared/reportfiles"
	"usage-analytics/internal/shared/svcerrors"

	"github.com/spf13/pflag"
)

func main() {
	var (
		configPath    string
		logDir        string
		formatterName string
		outPath       string
	)

	pflag.StringVar(&configPath, "config", "./configs/configs.yml", "path to the YAML config file")
	pflag.StringVarP(&logDir, "log-dir", "d", "", "directory containing the access log files (required)")
	pflag.StringVarP(&formatterName, "formatter", "f", formatters.NameStdout, "report formatter: stdout or json")
	pflag.StringVar(&outPath, "out", "", "write the report to this file instead of stdout")
	pflag.Parse()

	if logDir == "" {
		fmt.Fprintln(os.Stderr, "Missing required flag: --log-dir")
		pflag.Usage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg, app.Options{LogDir: logDir, Formatter: formatterName})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	// Cancel the run on interrupt so workers stop between lines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	report, err := application.Run(ctx)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			fmt.Fprintf(os.Stderr, "Run failed (%s/%s): %s\n", svcErr.Category, svcErr.Code, svcErr.Message)
			if svcErr.Cause != nil {
				fmt.Fprintf(os.Stderr, "  cause: %v\n", svcErr.Cause)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		}
		os.Exit(1)
	}

	if outPath != "" {
		if err := reportfiles.Write(outPath, report); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write report to %s: %v\n", outPath, err)
			os.Exit(1)
		}
		return
	}

	fmt.Print(report)
	if !strings.HasSuffix(report, "\n") {
		fmt.Println()
	}
}
