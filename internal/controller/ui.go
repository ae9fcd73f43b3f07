// Package controller provides output adapters for displaying route check results.
package controller

import (
	m "github.com/mouse-blink/routelint/internal/model"
)

// DefaultMaxOccurrences is the number of occurrences printed per broken
// group before the remainder is summarized as an overflow count.
const DefaultMaxOccurrences = 5

// Option is a functional option for UI construction.
type Option func(*Config)

// Config holds rendering settings shared by UI implementations.
type Config struct {
	maxOccurrences int
}

// WithMaxOccurrences bounds the occurrences printed per broken group.
// Zero prints only the overflow count; negative values are ignored.
func WithMaxOccurrences(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.maxOccurrences = n
		}
	}
}

func newConfig(options ...Option) Config {
	cfg := Config{maxOccurrences: DefaultMaxOccurrences}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying route check results.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	// DisplayReport renders the report and reports whether any reference
	// group is broken.
	DisplayReport(report m.BrokenLinkReport) (bool, error)
	DisplayRoutes(routes []m.DeclaredRoute) error
	// DisplayChecking announces that a check of root has started.
	DisplayChecking(root m.Path)
	DisplayWatching(root m.Path)
	DisplayError(err error)
}

// Session is a UI that owns the terminal while it runs. Start hands the
// terminal to the session and Close gives it back; onExit is called once
// the session ends, including when the user quits.
type Session interface {
	UI
	Start(onExit func()) error
	Close() error
}
