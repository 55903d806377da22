package config

import (
	"errors"
)

// Sentinel kinds for config errors. Callers match them with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
