// Package config provides configuration for the sanchess host program.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/sanchess-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // Board and status only
	StatusLine = 1 // Also report accepted moves
	Commentary = 2 // Also log rejected input and resolved origins
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls diagnostics on LogFile: 0=nothing, 1=move log,
	// 2=running commentary.
	Verbosity int

	// Board drawing settings
	Display *DisplayConfig

	// Optional snapshot outputs
	Export *ExportConfig

	// StartFEN is the position the game starts from. Empty means the
	// standard starting position.
	StartFEN string

	// Prompt prints "White to move: " before reading each line.
	Prompt bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  StatusLine,
		Display:    NewDisplayConfig(),
		Export:     NewExportConfig(),
		Prompt:     true,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream the board and game status are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	if c.Display != nil {
		if err := c.Display.Validate(); err != nil {
			return err
		}
	}
	if c.Export != nil {
		if err := c.Export.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
