package mcts

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTieBreak         = errors.New("unknown tie-break mode")
	ErrNoiseRequiresMostVisits = errors.New("noise sampling requires the most-visits tie-break mode")
	ErrInvalidNoise            = errors.New("invalid noise sampling policy")
)

// Misconfiguration of the decision, never retried. Returned by Config.Validate,
// raised as a panic when reached during a decision.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mcts: config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(field string, err error, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Err: fmt.Errorf("%w: "+format, append([]any{err}, args...)...)}
}
