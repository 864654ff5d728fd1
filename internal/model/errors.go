package model

import "fmt"

// ValidationError reports a load entry field that is out of range.
// These are recoverable: callers are expected to re-prompt, not crash.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid load: %s %s", e.Field, e.Message)
}

// ConfigurationError reports a system configuration value that is
// missing or outside its allowed range.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Message)
}
