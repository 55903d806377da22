// Package model contains domain models passed between layers.
package model

// Activity represents an extracurricular activity and its roster.
// Fields mirror the OpenAPI schema for /activities; the activity name is
// the key of the response map, so it is not repeated in the record itself.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy of the activity. The participant list is
// always non-nil so it marshals as an empty JSON array rather than null.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// IsRegistered reports whether email is already on the participant list.
func (a Activity) IsRegistered(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
