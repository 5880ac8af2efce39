package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/config"
)

// Snapshot is a position together with the move that produced it.
type Snapshot struct {
	Position *chess.Position

	// Move and SAN are nil and empty for the starting position.
	Move *chess.VerifiedMove
	SAN  string
}

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different formats (text, SVG, JSON).
type PositionWriter interface {
	// WritePosition writes a single snapshot to the output.
	WritePosition(snap *Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes the board diagram followed by the game status.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WritePosition writes the board and, when there is one, the status line.
func (tw *TextWriter) WritePosition(snap *Snapshot) error {
	if err := RenderBoard(tw.w, snap.Position.Board(), tw.cfg.Display); err != nil {
		return err
	}
	if status := StatusText(snap.Position); status != "" {
		if _, err := fmt.Fprintln(tw.w, status); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// MultiWriter fans each snapshot out to several writers.
type MultiWriter struct {
	writers []PositionWriter
}

// NewMultiWriter creates a writer that writes to each of ws in order.
func NewMultiWriter(ws ...PositionWriter) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// WritePosition writes snap to every writer, stopping at the first error.
func (mw *MultiWriter) WritePosition(snap *Snapshot) error {
	for _, w := range mw.writers {
		if err := w.WritePosition(snap); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes every writer.
func (mw *MultiWriter) Flush() error {
	for _, w := range mw.writers {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every writer and returns the first error.
func (mw *MultiWriter) Close() error {
	var first error
	for _, w := range mw.writers {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewWriters builds the writers cfg asks for: the text board or JSON
// snapshots on the output stream, plus an SVG file when one is named.
// Batched JSON is written when the returned writer is closed.
func NewWriters(cfg *config.Config) *MultiWriter {
	var ws []PositionWriter
	switch {
	case cfg.Export.JSONFormat && cfg.Export.JSONArray:
		ws = append(ws, NewJSONWriter(cfg.OutputFile))
	case cfg.Export.JSONFormat:
		ws = append(ws, NewJSONWriterSingle(cfg.OutputFile))
	default:
		ws = append(ws, NewTextWriter(cfg.OutputFile, cfg))
	}
	if cfg.Export.SVGFile != "" {
		ws = append(ws, NewSVGFileWriter(cfg.Export.SVGFile, cfg))
	}
	return NewMultiWriter(ws...)
}
