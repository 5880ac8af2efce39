// Package engine provides SAN move verification, move application and game
// status classification on top of the chess piece registry.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGame returns the standard starting position.
func NewGame() *chess.Position {
	return chess.NewPosition()
}

// pieceFromFENChar converts a FEN character to a colour and piece kind.
func pieceFromFENChar(c rune) (chess.Colour, chess.PieceKind, bool) {
	if c > unicode.MaxASCII {
		return chess.White, chess.NoPiece, false
	}
	colour := chess.White
	if unicode.IsLower(c) {
		colour = chess.Black
	}
	upper := byte(unicode.ToUpper(c))
	if upper == 'P' {
		return colour, chess.Pawn, true
	}
	kind := chess.KindFromLetter(upper)
	return colour, kind, kind != chess.NoPiece
}

// FENLetter returns the FEN letter of a coloured piece: uppercase for White,
// lowercase for Black.
func FENLetter(cell chess.Cell) byte {
	letter := cell.Kind.Letter()
	if cell.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewPositionFromFEN creates a position from a FEN string. Missing trailing
// fields take their starting-position defaults. The result must be playable:
// one king per colour, the side not to move not in check, castling rights
// backed by pieces on their home squares and an en-passant square behind a
// pawn that just advanced two squares.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := &chess.Position{
		Pieces:        chess.NewRegistry(),
		ToMove:        chess.White,
		EnPassantFile: chess.NoEnPassant,
		Castling:      chess.NoCastling,
		MoveNumber:    1,
	}

	if err := parsePiecePositions(pos.Pieces, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts); err != nil {
		return nil, err
	}

	if err := pos.Pieces.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	if IsInCheck(pos, pos.ToMove.Opposite()) {
		return nil, fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}
	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(reg *chess.Registry, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			colour, kind, ok := pieceFromFENChar(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			if kind == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
				return fmt.Errorf("pawn on %s: %w", chess.Sq(file, rank), errors.ErrInvalidFEN)
			}
			if err := reg.AddPiece(colour, kind, chess.Sq(file, rank)); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Each right
// needs the king and that rook still on their home squares.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	board := pos.Board()
	for _, c := range parts[2] {
		var colour chess.Colour
		var side chess.CastlingSide
		switch c {
		case 'K':
			colour, side = chess.White, chess.Kingside
		case 'Q':
			colour, side = chess.White, chess.Queenside
		case 'k':
			colour, side = chess.Black, chess.Kingside
		case 'q':
			colour, side = chess.Black, chess.Queenside
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		rank := colour.HomeRank()
		if !board.Occupant(chess.Sq(chess.KingHomeFile, rank)).Is(colour, chess.King) ||
			!board.Occupant(chess.Sq(side.RookHomeFile(), rank)).Is(colour, chess.Rook) {
			return fmt.Errorf("castling right %c without king and rook at home: %w", c, errors.ErrInvalidFEN)
		}
		pos.Castling |= chess.CastlingBit(colour, side)
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	pos.EnPassantFile = sq.File
	want, _ := pos.EnPassantSquare()
	victim := sq.Offset(0, pos.ToMove.Opposite().Forward())
	board := pos.Board()
	if sq != want || !board.IsEmpty(sq) || !board.Occupant(victim).Is(pos.ToMove.Opposite(), chess.Pawn) {
		return fmt.Errorf("en passant square %s does not follow a double push: %w", parts[3], errors.ErrInvalidFEN)
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.MoveNumber = uint(n)
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos.Board())
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	if ep, ok := pos.EnPassantSquare(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			cell := board.Occupant(chess.Sq(file, rank))
			if cell.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(FENLetter(cell))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
