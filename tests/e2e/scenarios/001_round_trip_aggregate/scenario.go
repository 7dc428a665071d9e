package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"usage-analytics/internal/app"
	"usage-analytics/internal/formatters"
	"usage-analytics/internal/shared/configs"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalLines = 40000 // Total number of log lines to generate across all files
)

var (
	owners = []uint32{101, 202, 303, 404, 505}
	sites  = []string{
		"https://cdn.video-platform.com/pixel.gif",
		"https://www.mysite.com/track",
		"/embed/player",
	}
)

// ### End - fixed configs

type ownerTotals struct {
	videoPlays    uint32
	adImpressions uint32
}

type ownerReport struct {
	OwnerID uint32 `json:"owner_id"`
	Usage   struct {
		VideoPlays    uint32 `json:"video_plays"`
		AdImpressions uint32 `json:"ad_impressions"`
	} `json:"usage"`
}

// main runs the e2e scenario: 001_round_trip_aggregate
//
// This scenario tests the end-to-end flow of log directory listing, concurrent
// file parsing, per-owner merge, and report formatting. It generates 40,000
// access-log lines spread round-robin across more files than the worker pool
// has workers, runs one aggregation, and checks the JSON report against totals
// tracked during generation.
//
// What it tests:
//   - Directory listing picks up every generated file
//   - Worker pool parses all files, not just the first pool-sized batch
//   - v/i events count one each regardless of their id values
//   - Owner-only and noise-parameter lines surface the owner without events
//   - Merged totals match the generator's bookkeeping exactly
//   - JSON report lists owners in ascending order
//
// Expected results:
//   - Each of the 5 owners ends with 4,000 video plays and 4,000 ad impressions
//   - The report contains exactly the 5 generated owners
//   - The run exits cleanly with no error
func main() {
	// these configs can be changed to run the scenario
	fileCount := 8                               // Number of log files to spread lines across (keep above the worker count)
	workers := getEnvInt("E2E_WORKERS", 5)       // Worker pool size for the run
	queueSize := getEnvInt("E2E_QUEUE_SIZE", 64) // Pending file queue bound
	logLevel := getEnv("E2E_LOG_LEVEL", "info")  // Log level for the run
	metricsEnabled := getEnvBool("E2E_METRICS", false)
	logDir := getEnv("E2E_LOG_DIR", ".tmp/e2e-logs") // Log directory path relative to project root
	wantCleanLogDir := getEnvBool("E2E_CLEAN_LOG_DIR", true)

	// Get project root directory by looking for go.mod file
	// Start from current working directory and walk up until we find go.mod
	projectRoot, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}

	// Walk up the directory tree to find go.mod
	for i := 0; i < 10; i++ {
		goModPath := filepath.Join(projectRoot, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			// Reached filesystem root without finding go.mod
			fmt.Fprintf(os.Stderr, "ERROR: Could not find go.mod file. Please run from project root or set E2E_LOG_DIR to absolute path\n")
			os.Exit(1)
		}
		projectRoot = parent
	}

	// Resolve log directory relative to project root
	logPath := filepath.Join(projectRoot, logDir)
	logPath, err = filepath.Abs(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to resolve log directory path: %v\n", err)
		os.Exit(1)
	}

	// Clean up the log directory if requested
	if wantCleanLogDir {
		fmt.Printf("Cleaning log directory: %s\n", logPath)
		if err := os.RemoveAll(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean log directory: %v\n", err)
		} else {
			fmt.Printf("Log directory cleaned\n")
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_round_trip_aggregate")
	fmt.Printf("TOTAL_LINES: %d\n", totalLines)
	fmt.Printf("FILE_COUNT: %d\n", fileCount)
	fmt.Printf("WORKERS: %d\n", workers)
	fmt.Printf("QUEUE_SIZE: %d\n", queueSize)
	fmt.Printf("LOG_LEVEL: %s\n", logLevel)
	fmt.Printf("METRICS_ENABLED: %v\n", metricsEnabled)
	fmt.Printf("LOG_DIR: %s\n", logDir)
	fmt.Printf("LOG_PATH: %s\n", logPath)
	fmt.Printf("WANT_CLEAN_LOG_DIR: %v\n", wantCleanLogDir)
	fmt.Println()

	// Generate all log files and track the totals each line contributes
	fmt.Printf("Generating %d lines across %d files...\n", totalLines, fileCount)
	expected := generateLogFiles(logPath, fileCount)
	fmt.Printf("Generated %d files in %s\n", fileCount, logPath)
	fmt.Println()

	// Run one aggregation over the generated directory
	cfg := &configs.Config{
		Log:    configs.LogConfig{Level: logLevel},
		Parser: configs.ParserConfig{Workers: workers, QueueSize: queueSize},
		Metrics: configs.MetricsConfig{
			Enabled: metricsEnabled,
			Port:    9091,
		},
	}

	application, err := app.New(cfg, app.Options{LogDir: logPath, Formatter: formatters.NameJSON})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	report, err := application.Run(context.Background())
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run finished in %s\n", duration)
	fmt.Println()

	// Verify the JSON report against the generator's bookkeeping
	var reports []ownerReport
	if err := json.Unmarshal([]byte(report), &reports); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Report is not valid JSON: %v\n", err)
		os.Exit(1)
	}

	var failures []string

	if len(reports) != len(expected) {
		failures = append(failures, fmt.Sprintf("report has %d owners, expected %d", len(reports), len(expected)))
	}

	if !sort.SliceIsSorted(reports, func(i, j int) bool { return reports[i].OwnerID < reports[j].OwnerID }) {
		failures = append(failures, "report owners are not in ascending order")
	}

	for _, r := range reports {
		want, ok := expected[r.OwnerID]
		if !ok {
			failures = append(failures, fmt.Sprintf("owner %d: not generated but reported", r.OwnerID))
			continue
		}
		if r.Usage.VideoPlays != want.videoPlays {
			failures = append(failures, fmt.Sprintf("owner %d: video plays %d, expected %d", r.OwnerID, r.Usage.VideoPlays, want.videoPlays))
		}
		if r.Usage.AdImpressions != want.adImpressions {
			failures = append(failures, fmt.Sprintf("owner %d: ad impressions %d, expected %d", r.OwnerID, r.Usage.AdImpressions, want.adImpressions))
		}
	}

	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d report checks failed\n", len(failures))
		for _, failure := range failures {
			fmt.Fprintf(os.Stderr, "  - %s\n", failure)
		}
		os.Exit(1)
	}

	// Print statistics
	fmt.Println("All report checks passed")
	fmt.Println("=== Statistics ===")
	fmt.Printf("Total lines generated: %d\n", totalLines)
	fmt.Printf("Files generated: %d\n", fileCount)
	fmt.Printf("Owners reported: %d\n", len(reports))
	for _, r := range reports {
		fmt.Printf("Owner %d: video plays %d, ad impressions %d\n", r.OwnerID, r.Usage.VideoPlays, r.Usage.AdImpressions)
	}
	fmt.Printf("Run duration: %s\n", duration)
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// generateLogFiles writes totalLines deterministic log lines round-robin into
// fileCount files under dir and returns the per-owner totals those lines add
// up to. Line i belongs to owner i%len(owners) and cycles through four kinds:
// video play, ad impression, both events, and owner-only with a noise
// parameter. Ids and cache busters vary per line but never change the counts.
func generateLogFiles(dir string, fileCount int) map[uint32]*ownerTotals {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	files := make([]strings.Builder, fileCount)
	expected := make(map[uint32]*ownerTotals, len(owners))
	for _, owner := range owners {
		expected[owner] = &ownerTotals{}
	}

	for i := 0; i < totalLines; i++ {
		owner := owners[i%len(owners)]
		site := sites[i%len(sites)]
		totals := expected[owner]

		var line string
		switch i % 4 {
		case 0:
			line = fmt.Sprintf("%s?o=%d&v=%d&cb=%d", site, owner, 1000+i%7919, i)
			totals.videoPlays++
		case 1:
			line = fmt.Sprintf("%s?o=%d&i=%d", site, owner, 2000+i%6101)
			totals.adImpressions++
		case 2:
			line = fmt.Sprintf("%s?o=%d&v=%d&i=%d", site, owner, 1000+i%7919, 2000+i%6101)
			totals.videoPlays++
			totals.adImpressions++
		case 3:
			line = fmt.Sprintf("%s?o=%d&t=%d", site, owner, i)
		}

		files[i%fileCount].WriteString(line)
		files[i%fileCount].WriteByte('\n')
	}

	for fileIndex := range files {
		name := fmt.Sprintf("access-%02d.log", fileIndex)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[fileIndex].String()), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to write %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	return expected
}
