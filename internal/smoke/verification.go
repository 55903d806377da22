package smoke

import (
	"context"
	"fmt"
	"log"
	"sort"
)

// verifyRosters checks every generated signup against the live rosters.
// When expectPresent is true each student must appear on their activity
// roster, otherwise each student must be gone again.
func verifyRosters(ctx context.Context, config *Config, signups []Signup, expectPresent bool, stats *Stats) error {
	if expectPresent {
		log.Println("🔍 Verifying students are on the rosters...")
	} else {
		log.Println("🔍 Verifying rosters were restored...")
	}

	if len(signups) == 0 {
		return fmt.Errorf("no signups to verify")
	}

	activities, err := fetchActivities(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to fetch activities: %w", err)
	}

	// Index roster membership per activity
	rosters := make(map[string]map[string]bool, len(activities))
	for name, activity := range activities {
		members := make(map[string]bool, len(activity.Participants))
		for _, email := range activity.Participants {
			members[email] = true
		}
		rosters[name] = members
	}

	verified := 0
	mismatches := 0
	for _, s := range signups {
		present := rosters[s.Activity][s.Email]
		if present == expectPresent {
			verified++
			continue
		}

		mismatches++
		if config.Verbose {
			if expectPresent {
				log.Printf("⚠️  %s missing from %s", s.Email, s.Activity)
			} else {
				log.Printf("⚠️  %s still on %s", s.Email, s.Activity)
			}
		}
	}

	if expectPresent {
		stats.PresentVerified = verified
	} else {
		stats.RemovedVerified = verified
	}

	if mismatches > 0 {
		log.Printf("⚠️  Roster consistency warning: %d of %d signups failed verification", mismatches, len(signups))
	} else {
		log.Println("✅ Roster membership verified")
	}

	displayRosterSummary(activities, config.Verbose)

	log.Println("✅ Roster verification completed")
	return nil
}

// displayRosterSummary shows the per-activity fill of the live rosters.
func displayRosterSummary(activities map[string]Activity, verbose bool) {
	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	log.Printf("🏫 Roster summary for %d activities:", len(names))
	total := 0
	for _, name := range names {
		activity := activities[name]
		total += len(activity.Participants)
		log.Printf("   %s: %d/%d signed up", name, len(activity.Participants), activity.MaxParticipants)
	}

	if verbose {
		// Show some statistics
		var fullest string
		var fullestRatio float64
		for _, name := range names {
			activity := activities[name]
			if activity.MaxParticipants == 0 {
				continue
			}

			ratio := float64(len(activity.Participants)) / float64(activity.MaxParticipants)
			if ratio > fullestRatio {
				fullestRatio = ratio
				fullest = name
			}
		}

		log.Printf(`📊 Roster statistics:
   Participants: %d
   Fullest: %s (%.0f%%)
`, total, fullest, fullestRatio*PercentageMultiplier)
	}
}
