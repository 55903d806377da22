package smoke

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mergington/activities/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "smoke_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the roster smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`Mergington Roster Smoke Tool
============================

A concurrent smoke test for the Mergington activities signup service.
It signs generated students up, verifies the rosters, then removes them
and verifies the rosters are restored.

Usage:
  go run cmd/smoke/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -students int
        Number of students to generate and sign up (default 200)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -keep
        Leave the generated signups on the rosters
  -log string
        Log file for test output (default: smoke_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Smoke test with default settings
  go run cmd/smoke/main.go

  # Smoke test with custom parameters
  go run cmd/smoke/main.go -students 1000 -workers 16 -url http://localhost:8080

  # Smoke test with verbose output
  go run cmd/smoke/main.go -verbose -students 50

  # Leave the generated signups in place afterwards
  go run cmd/smoke/main.go -students 20 -keep
`)
}
