package smoke

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mergington/activities/pkg/logger"
)

// Run executes the complete roster smoke test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting roster smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("students", config.NumStudents),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("keep", config.Keep),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the activity catalog
	activities, err := fetchActivities(ctx, config)
	if err != nil {
		return fmt.Errorf("catalog fetch failed: %w", err)
	}
	if len(activities) == 0 {
		return fmt.Errorf("activity catalog is empty")
	}

	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	// Step 3: Generate students
	signups := generateSignups(ctx, config, names, stats)

	// Step 4: Sign students up concurrently
	if err := submitSignups(ctx, config, signups, stats); err != nil {
		return fmt.Errorf("signup submission failed: %w", err)
	}

	// Step 5: Verify the rosters picked the students up
	if err := verifyRosters(ctx, config, signups, true, stats); err != nil {
		return fmt.Errorf("roster verification failed: %w", err)
	}

	// Step 6: Remove the students again unless asked to keep them
	if config.Keep {
		logger.Get().Info(ctx, "keeping generated signups on the rosters")
	} else {
		if err := unregisterStudents(ctx, config, signups, stats); err != nil {
			return fmt.Errorf("unregister submission failed: %w", err)
		}

		// Step 7: Verify the rosters were restored
		if err := verifyRosters(ctx, config, signups, false, stats); err != nil {
			return fmt.Errorf("restore verification failed: %w", err)
		}
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "smoke test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final smoke test statistics.
func displayFinalStats(stats *Stats) {
	var successRate, signupsPerSecond float64

	if stats.SignupsAttempted > 0 {
		successRate = float64(stats.SignupsSucceeded) / float64(stats.SignupsAttempted) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		signupsPerSecond = float64(stats.SignupsAttempted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("studentsGenerated", stats.StudentsGenerated),
		logger.Int("signupsAttempted", stats.SignupsAttempted),
		logger.Int("signupsSucceeded", stats.SignupsSucceeded),
		logger.Int("signupConflicts", stats.SignupConflicts),
		logger.Int("signupsFailed", stats.SignupsFailed),
		logger.Int("presentVerified", stats.PresentVerified),
		logger.Int("unregistersAttempted", stats.UnregistersAttempted),
		logger.Int("unregistersSucceeded", stats.UnregistersSucceeded),
		logger.Int("unregistersFailed", stats.UnregistersFailed),
		logger.Int("removedVerified", stats.RemovedVerified),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("signupsPerSecond", signupsPerSecond))
}
