// Package output renders positions as a text board, an SVG drawing or a
// JSON snapshot.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/config"
	"github.com/lgbarn/sanchess-go/internal/engine"
)

// Chess symbols indexed by colour, then piece kind.
var unicodeGlyphs = [2][chess.NumPieceKinds]rune{
	{' ', '♙', '♘', '♗', '♖', '♕', '♔'},
	{' ', '♟', '♞', '♝', '♜', '♛', '♚'},
}

// Glyph returns the character drawn for a cell.
func Glyph(cell chess.Cell, d *config.DisplayConfig) rune {
	if cell.IsEmpty() {
		return d.EmptySquare
	}
	if d.Glyphs == config.Letters {
		return rune(engine.FENLetter(cell))
	}
	return unicodeGlyphs[cell.Colour][cell.Kind]
}

// squareAt maps a display row and column (0,0 at top left) to a square.
func squareAt(d *config.DisplayConfig, row, col int) chess.Square {
	if d.Flip {
		return chess.Sq(chess.BoardSize-1-col, row)
	}
	return chess.Sq(col, chess.BoardSize-1-row)
}

// RenderBoard writes a text diagram of the board, one rank per line.
func RenderBoard(w io.Writer, board *chess.Board, d *config.DisplayConfig) error {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		if d.ShowLabels {
			sb.WriteByte(squareAt(d, row, 0).RankDigit())
			sb.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(Glyph(board.Occupant(squareAt(d, row, col)), d))
		}
		sb.WriteByte('\n')
	}

	if d.ShowLabels {
		sb.WriteString(" ")
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(squareAt(d, 0, col).FileLetter())
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// StatusText returns the line announced after a move, or "" while the game
// goes on without check.
func StatusText(pos *chess.Position) string {
	switch engine.Classify(pos) {
	case engine.Check:
		return "Check"
	case engine.Checkmate:
		winner, _ := engine.Winner(pos)
		return fmt.Sprintf("Checkmate. %s wins.", winner)
	case engine.Stalemate:
		return "Stalemate."
	}
	return ""
}
