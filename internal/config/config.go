// Package config provides configuration for the chess referee.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// StartFEN is the position the game starts from. Empty means the
	// standard starting position.
	StartFEN string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Display DisplayConfig
	Perft   PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Display:    *NewDisplayConfig(),
		Perft:      *NewPerftConfig(),
	}
}

// SetOutput sets the writer the board and results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log writers must be set: %w", errors.ErrInvalidConfig)
	}
	return c.Perft.Validate()
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
