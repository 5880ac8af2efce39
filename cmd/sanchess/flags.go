// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/sanchess-go/internal/config"
)

var (
	// Starting position
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the initial position")

	// Board display
	letterGlyphs = flag.Bool("letters", false, "Draw pieces as FEN letters instead of chess symbols")
	noLabels     = flag.Bool("nolabels", false, "Don't draw rank and file labels")
	flipBoard    = flag.Bool("flip", false, "Draw the board from Black's side")

	// Snapshot outputs
	svgFile    = flag.String("svg", "", "Write an SVG drawing of the board to this file after every move")
	svgSize    = flag.Int("svgsize", config.DefaultSVGSquareSize, "SVG square size in pixels")
	jsonOutput = flag.Bool("J", false, "Write a JSON snapshot per position instead of the text board")
	jsonArray  = flag.Bool("Jarray", false, "Write all JSON snapshots as one {\"positions\": [...]} document at exit")

	// Prompting and diagnostics
	noPrompt  = flag.Bool("noprompt", false, "Don't print the move prompt")
	verbosity = flag.Int("v", config.StatusLine, "Verbosity: 0 silent, 1 move log, 2 commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")

	// Information
	version = flag.Bool("version", false, "Show version")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)
	applyExportFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
	cfg.Prompt = !*noPrompt && !cfg.Export.JSONFormat
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) {
	if *letterGlyphs {
		cfg.Display.Glyphs = config.Letters
	}
	cfg.Display.ShowLabels = !*noLabels
	cfg.Display.Flip = *flipBoard
}

// applyExportFlags configures SVG and JSON output.
func applyExportFlags(cfg *config.Config) {
	cfg.Export.SVGFile = *svgFile
	cfg.Export.SVGSquareSize = *svgSize
	cfg.Export.JSONFormat = *jsonOutput || *jsonArray
	cfg.Export.JSONArray = *jsonArray
}
