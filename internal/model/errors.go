package model

import "fmt"

// ConfigError reports reference data that is missing an expected key or breaks
// a table invariant. It is a startup-time condition, never a user error.
type ConfigError struct {
	Table  string // "tax" or "budget"
	Key    string // dotted path inside the document, e.g. "federal.single"
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s table: %s: %s", e.Table, e.Key, e.Reason)
}

func taxConfigError(key, format string, args ...any) *ConfigError {
	return &ConfigError{Table: "tax", Key: key, Reason: fmt.Sprintf(format, args...)}
}

func budgetConfigError(key, format string, args ...any) *ConfigError {
	return &ConfigError{Table: "budget", Key: key, Reason: fmt.Sprintf(format, args...)}
}
