package config

import (
	"fmt"

	"github.com/lgbarn/sanchess-go/internal/errors"
)

// GlyphSet selects how pieces are drawn in the text board.
type GlyphSet int

const (
	Unicode GlyphSet = iota // Chess symbols (♔ ♚ ...)
	Letters                 // FEN letters, uppercase for White
)

// String returns the flag spelling of a glyph set.
func (g GlyphSet) String() string {
	switch g {
	case Unicode:
		return "unicode"
	case Letters:
		return "letters"
	}
	return fmt.Sprintf("GlyphSet(%d)", int(g))
}

// DisplayConfig holds settings related to board drawing.
type DisplayConfig struct {
	// Glyphs chooses Unicode symbols or FEN letters for pieces
	Glyphs GlyphSet

	// ShowLabels prints file letters and rank digits around the board
	ShowLabels bool

	// Flip draws the board from Black's side
	Flip bool

	// EmptySquare is the character drawn on an empty square
	EmptySquare rune
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Glyphs:      Unicode,
		ShowLabels:  true,
		EmptySquare: '.',
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.Glyphs != Unicode && d.Glyphs != Letters {
		return fmt.Errorf("unknown glyph set %d: %w", int(d.Glyphs), errors.ErrInvalidConfig)
	}
	if d.EmptySquare == 0 {
		return fmt.Errorf("empty square glyph not set: %w", errors.ErrInvalidConfig)
	}
	return nil
}
