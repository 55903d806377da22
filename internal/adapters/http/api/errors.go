package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors. ErrMissingEmail doubles as the detail
// string returned to clients, so its wording is load-bearing.
var (
	ErrMissingEmail = errors.New("email query parameter is required")
)

// Wrap tags err with the operation that raised it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
