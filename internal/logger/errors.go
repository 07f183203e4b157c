package logger

import "errors"

// Common errors returned by the logger package.
var (
	// ErrNilConfig is returned when a nil configuration is provided.
	ErrNilConfig = errors.New("logger config cannot be nil")
)
