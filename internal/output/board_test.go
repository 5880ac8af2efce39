package output

import (
	"bytes"
	"testing"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/config"
	"github.com/lgbarn/sanchess-go/internal/engine"
	"github.com/lgbarn/sanchess-go/internal/testutil"
)

func TestRenderBoard(t *testing.T) {
	tests := []struct {
		name    string
		display func(*config.DisplayConfig)
		moves   []string
		want    string
	}{
		{
			name:    "letters with labels",
			display: func(d *config.DisplayConfig) { d.Glyphs = config.Letters },
			want: "8 r n b q k b n r\n" +
				"7 p p p p p p p p\n" +
				"6 . . . . . . . .\n" +
				"5 . . . . . . . .\n" +
				"4 . . . . . . . .\n" +
				"3 . . . . . . . .\n" +
				"2 P P P P P P P P\n" +
				"1 R N B Q K B N R\n" +
				"  a b c d e f g h\n",
		},
		{
			name:    "letters after e4",
			display: func(d *config.DisplayConfig) { d.Glyphs = config.Letters; d.ShowLabels = false },
			moves:   []string{"e4"},
			want: "r n b q k b n r\n" +
				"p p p p p p p p\n" +
				". . . . . . . .\n" +
				". . . . . . . .\n" +
				". . . . P . . .\n" +
				". . . . . . . .\n" +
				"P P P P . P P P\n" +
				"R N B Q K B N R\n",
		},
		{
			name:    "flipped",
			display: func(d *config.DisplayConfig) { d.Glyphs = config.Letters; d.Flip = true },
			want: "1 R N B K Q B N R\n" +
				"2 P P P P P P P P\n" +
				"3 . . . . . . . .\n" +
				"4 . . . . . . . .\n" +
				"5 . . . . . . . .\n" +
				"6 . . . . . . . .\n" +
				"7 p p p p p p p p\n" +
				"8 r n b k q b n r\n" +
				"  h g f e d c b a\n",
		},
		{
			name:    "unicode",
			display: func(d *config.DisplayConfig) { d.ShowLabels = false },
			want: "♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜\n" +
				"♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟\n" +
				". . . . . . . .\n" +
				". . . . . . . .\n" +
				". . . . . . . .\n" +
				". . . . . . . .\n" +
				"♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙\n" +
				"♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := config.NewDisplayConfig()
			tt.display(d)
			pos := testutil.PlayFromStart(t, tt.moves...)

			var buf bytes.Buffer
			if err := RenderBoard(&buf, pos.Board(), d); err != nil {
				t.Fatalf("RenderBoard failed: %v", err)
			}
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestGlyph(t *testing.T) {
	d := config.NewDisplayConfig()
	if got := Glyph(chess.B(chess.Knight), d); got != '♞' {
		t.Errorf("Glyph(black knight) = %q, want '♞'", got)
	}
	if got := Glyph(chess.Empty, d); got != '.' {
		t.Errorf("Glyph(empty) = %q, want '.'", got)
	}

	d.Glyphs = config.Letters
	d.EmptySquare = '-'
	if got := Glyph(chess.B(chess.Pawn), d); got != 'p' {
		t.Errorf("Glyph(black pawn) = %q, want 'p'", got)
	}
	if got := Glyph(chess.W(chess.Queen), d); got != 'Q' {
		t.Errorf("Glyph(white queen) = %q, want 'Q'", got)
	}
	if got := Glyph(chess.Empty, d); got != '-' {
		t.Errorf("Glyph(empty) = %q, want '-'", got)
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name string
		pos  func(t *testing.T) *chess.Position
		want string
	}{
		{
			name: "start",
			pos:  func(t *testing.T) *chess.Position { return engine.NewGame() },
			want: "",
		},
		{
			name: "check",
			pos: func(t *testing.T) *chess.Position {
				return testutil.PlayFromStart(t, "e4", "e5", "Bc4", "Nc6", "Bxf7+")
			},
			want: "Check",
		},
		{
			name: "fool's mate",
			pos: func(t *testing.T) *chess.Position {
				return testutil.PlayFromStart(t, "f3", "e5", "g4", "Qh4#")
			},
			want: "Checkmate. Black wins.",
		},
		{
			name: "stalemate",
			pos: func(t *testing.T) *chess.Position {
				return testutil.MustPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
			},
			want: "Stalemate.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusText(tt.pos(t)); got != tt.want {
				t.Errorf("StatusText() = %q, want %q", got, tt.want)
			}
		})
	}
}
