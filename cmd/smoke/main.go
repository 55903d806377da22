package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/mergington/activities/internal/smoke"
)

// Default configuration constants.
const (
	defaultNumStudents = 200
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numStudents = flag.Int("students", defaultNumStudents, "Number of students to generate and sign up")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		keep        = flag.Bool("keep", false, "Leave the generated signups on the rosters")
		logFile     = flag.String("log", "", "Log file for test output (default: smoke_log_TIMESTAMP.log)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	// Setup logging
	if err := smoke.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	// Create smoke test configuration
	config := &smoke.Config{
		BaseURL:     *baseURL,
		NumStudents: *numStudents,
		Workers:     *workers,
		Timeout:     *timeout,
		Keep:        *keep,
		LogFile:     *logFile,
		Verbose:     *verbose,
	}

	// Run the smoke test
	if err := smoke.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Smoke test failed: " + err.Error() + "\n")
		return
	}
}
