// Package catalog provides the built-in activity catalog and loading of
// replacement catalogs from YAML files.
package catalog

import (
	"github.com/mergington/activities/internal/domain/model"
)

// Default returns the built-in school catalog. Each call returns fresh
// copies, so callers may mutate rosters without affecting later calls.
func Default() []model.Activity {
	out := make([]model.Activity, len(defaults))
	for i, a := range defaults {
		out[i] = a.Clone()
	}
	return out
}

// defaults is the catalog the school ships with. Participant lists hold
// the students pre-registered at the start of the semester.
var defaults = []model.Activity{
	{
		Name:            "Drama Club",
		Description:     "Perform in theatrical productions and develop acting skills",
		Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 25,
		Participants:    []string{"alex@mergington.edu"},
	},
	{
		Name:            "Art Studio",
		Description:     "Explore painting, drawing, and sculpture techniques",
		Schedule:        "Mondays and Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 18,
		Participants:    []string{"isabella@mergington.edu"},
	},
	{
		Name:            "Debate Team",
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Tuesdays, 3:30 PM - 4:45 PM",
		MaxParticipants: 16,
		Participants:    []string{"james@mergington.edu"},
	},
	{
		Name:            "Robotics Club",
		Description:     "Design and build robots for competitions",
		Schedule:        "Wednesdays and Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 15,
		Participants:    []string{"sara@mergington.edu"},
	},
	{
		Name:            "Basketball Team",
		Description:     "Competitive basketball training and games",
		Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 14,
		Participants:    []string{"marcus@mergington.edu", "jessica@mergington.edu"},
	},
	{
		Name:            "Soccer Team",
		Description:     "Competitive soccer training and matches",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 16,
		Participants:    []string{"chris@mergington.edu"},
	},
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
}
