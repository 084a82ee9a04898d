package core

import (
	"errors"
	"fmt"
)

// ErrNamingResolution marks a logical name that cannot be turned into a
// physical one. Schema mapping must not continue past it.
var ErrNamingResolution = errors.New("naming resolution failed")

// ConfigurationError reports a configuration value that cannot be resolved
// into a working component. It is fatal at startup.
type ConfigurationError struct {
	Key   string // config key, e.g. "auditor_aware"
	Value string // offending value
	Err   error  // underlying cause
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
