package output

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/config"
)

// Square fills.
const (
	lightFill   = "#f0d9b5"
	darkFill    = "#b58863"
	lightMarked = "#cdd26a"
	darkMarked  = "#aaa23a"
)

// errWriter remembers the first write error so a whole drawing can be
// checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// RenderSVG draws the board as an SVG document with squares of the given
// size. The origin and target of last, when not nil, are highlighted.
func RenderSVG(w io.Writer, board *chess.Board, last *chess.VerifiedMove, d *config.DisplayConfig, size int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	edge := size * chess.BoardSize
	canvas.Start(edge, edge)

	pieceStyle := fmt.Sprintf("text-anchor:middle;font-size:%dpx;font-family:serif", size*3/4)
	labelStyle := fmt.Sprintf("font-size:%dpx;font-family:sans-serif", size/5)

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := squareAt(d, row, col)
			x, y := col*size, row*size
			dark := (sq.File+sq.Rank)%2 == 0
			canvas.Rect(x, y, size, size, "fill:"+squareFill(sq, dark, last))

			if cell := board.Occupant(sq); !cell.IsEmpty() {
				canvas.Text(x+size/2, y+size*3/4, string(unicodeGlyphs[cell.Colour][cell.Kind]), pieceStyle)
			}

			if !d.ShowLabels {
				continue
			}
			if col == 0 {
				canvas.Text(x+2, y+size/5+1, string(sq.RankDigit()), labelStyle)
			}
			if row == chess.BoardSize-1 {
				canvas.Text(x+size-size/5, y+size-3, string(sq.FileLetter()), labelStyle)
			}
		}
	}

	canvas.End()
	return ew.err
}

func squareFill(sq chess.Square, dark bool, last *chess.VerifiedMove) string {
	marked := last != nil && (sq == last.From || sq == last.Target)
	switch {
	case marked && dark:
		return darkMarked
	case marked:
		return lightMarked
	case dark:
		return darkFill
	}
	return lightFill
}

// SVGWriter redraws an SVG file after every position.
type SVGWriter struct {
	open func() (io.WriteCloser, error)
	cfg  *config.Config
}

// NewSVGWriter creates an SVG writer that calls open for each drawing.
func NewSVGWriter(open func() (io.WriteCloser, error), cfg *config.Config) *SVGWriter {
	return &SVGWriter{
		open: open,
		cfg:  cfg,
	}
}

// NewSVGFileWriter creates an SVG writer that overwrites path with the
// latest position.
func NewSVGFileWriter(path string, cfg *config.Config) *SVGWriter {
	return NewSVGWriter(func() (io.WriteCloser, error) {
		return os.Create(path) //nolint:gosec // G304: path comes from the command line
	}, cfg)
}

// WritePosition draws snap, replacing the previous drawing.
func (sw *SVGWriter) WritePosition(snap *Snapshot) error {
	f, err := sw.open()
	if err != nil {
		return fmt.Errorf("opening SVG output: %w", err)
	}
	err = RenderSVG(f, snap.Position.Board(), snap.Move, sw.cfg.Display, sw.cfg.Export.SVGSquareSize)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Flush is a no-op; each drawing is complete when written.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}
