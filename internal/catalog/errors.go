package catalog

import "errors"

// Sentinel kinds for catalog loading errors.
var (
	ErrEmptyCatalog  = errors.New("catalog has no activities")
	ErrMissingName   = errors.New("activity name must not be empty")
	ErrDuplicateName = errors.New("duplicate activity name")
)
