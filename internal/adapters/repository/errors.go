package repository

import "errors"

// Sentinel kinds for roster errors. The messages double as the API
// detail strings returned to clients, so their wording is load-bearing.
var (
	ErrActivityNotFound  = errors.New("Activity not found")
	ErrAlreadyRegistered = errors.New("Student is already signed up")
	ErrNotRegistered     = errors.New("Student is not registered for this activity")
)
