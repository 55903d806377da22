package smoke

import "time"

// Config holds configuration for the roster smoke test
type Config struct {
	BaseURL     string        // Base URL of the service
	NumStudents int           // Number of students to generate and sign up
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	Keep        bool          // Leave generated signups on the rosters
	LogFile     string        // Log file for test output
	Verbose     bool          // Enable verbose logging
}

// Activity mirrors the wire shape returned by GET /activities
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Signup pairs a generated student email with a target activity
type Signup struct {
	Email    string
	Activity string
}

// MessageResponse represents a success body from the roster endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse represents an error body from the roster endpoints
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Stats holds smoke test statistics
type Stats struct {
	StudentsGenerated    int
	SignupsAttempted     int
	SignupsSucceeded     int
	SignupConflicts      int
	SignupsFailed        int
	PresentVerified      int
	UnregistersAttempted int
	UnregistersSucceeded int
	UnregistersFailed    int
	RemovedVerified      int
	StartTime            time.Time
	EndTime              time.Time
	Duration             time.Duration
}
