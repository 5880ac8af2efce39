package config

import (
	"fmt"

	"github.com/lgbarn/sanchess-go/internal/errors"
)

// SVG square size bounds, in pixels.
const (
	MinSVGSquareSize     = 16
	MaxSVGSquareSize     = 256
	DefaultSVGSquareSize = 45
)

// ExportConfig holds settings for snapshot outputs written after each move.
type ExportConfig struct {
	// SVGFile receives an SVG drawing of the board; empty disables it
	SVGFile string

	// SVGSquareSize is the edge of one square in the SVG drawing
	SVGSquareSize int

	// JSONFormat writes a JSON snapshot of each position to the output
	// stream instead of the text board
	JSONFormat bool

	// JSONArray collects the snapshots and writes them as one document
	// when the game ends. Only used with JSONFormat.
	JSONArray bool
}

// NewExportConfig creates an ExportConfig with default values.
// Exports are disabled by default.
func NewExportConfig() *ExportConfig {
	return &ExportConfig{
		SVGSquareSize: DefaultSVGSquareSize,
	}
}

// Validate checks that the export configuration is valid.
func (e *ExportConfig) Validate() error {
	if e.SVGSquareSize < MinSVGSquareSize || e.SVGSquareSize > MaxSVGSquareSize {
		return fmt.Errorf("SVG square size %d out of range %d-%d: %w",
			e.SVGSquareSize, MinSVGSquareSize, MaxSVGSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
