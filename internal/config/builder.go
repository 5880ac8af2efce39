package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGlyphs sets the piece glyphs of the text board.
func (b *ConfigBuilder) WithGlyphs(glyphs GlyphSet) *ConfigBuilder {
	b.cfg.Display.Glyphs = glyphs
	return b
}

// WithLabels controls whether file and rank labels are drawn.
func (b *ConfigBuilder) WithLabels(show bool) *ConfigBuilder {
	b.cfg.Display.ShowLabels = show
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(flip bool) *ConfigBuilder {
	b.cfg.Display.Flip = flip
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithSVGFile enables SVG snapshots written to path.
func (b *ConfigBuilder) WithSVGFile(path string) *ConfigBuilder {
	b.cfg.Export.SVGFile = path
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Export.JSONFormat = enabled
	return b
}

// WithJSONArray writes all JSON snapshots as one document at the end of
// the game. It also enables JSON output.
func (b *ConfigBuilder) WithJSONArray(enabled bool) *ConfigBuilder {
	b.cfg.Export.JSONArray = enabled
	if enabled {
		b.cfg.Export.JSONFormat = true
	}
	return b
}

// WithPrompt controls the move prompt.
func (b *ConfigBuilder) WithPrompt(enabled bool) *ConfigBuilder {
	b.cfg.Prompt = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
