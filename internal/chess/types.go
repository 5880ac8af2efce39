// Package chess provides core chess types: colours, pieces, squares, the
// piece registry and the board projection derived from it.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of a pawn push: +1 for White, -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index on which a pawn of this colour promotes.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PieceKind represents a chess piece type.
type PieceKind uint8

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single SAN letter of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an uppercase SAN piece letter to a piece kind.
// Pawns have no SAN letter, so 'P' is not recognised.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoPiece
}

// IsPromotable reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotable() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// Square is a board coordinate. File and Rank are signed so that motion
// deltas can be added without conversion; a square is only meaningful when
// OnBoard reports true.
type Square struct {
	File int
	Rank int
}

// NoSquare is the zero-information square used when a move has no target.
var NoSquare = Square{File: -1, Rank: -1}

// Sq builds a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare converts algebraic text like "e4" to a square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || !IsFileLetter(s[0]) || !IsRankDigit(s[1]) {
		return NoSquare, false
	}
	return Square{File: int(s[0] - FileBase), Rank: int(s[1] - RankBase)}, true
}

// MustSquare is like ParseSquare but panics on bad input. Intended for
// tables and tests with literal squares.
func MustSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic(fmt.Sprintf("chess: bad square %q", s))
	}
	return sq
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square displaced by the given file and rank deltas.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// FileLetter returns 'a'..'h'.
func (s Square) FileLetter() byte {
	return byte(s.File) + FileBase
}

// RankDigit returns '1'..'8'.
func (s Square) RankDigit() byte {
	return byte(s.Rank) + RankBase
}

// String returns the algebraic name of the square, or "-" when off board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// IsFileLetter reports whether c is a file letter a-h.
func IsFileLetter(c byte) bool {
	return c >= FileBase && c < FileBase+BoardSize
}

// IsRankDigit reports whether c is a rank digit 1-8.
func IsRankDigit(c byte) bool {
	return c >= RankBase && c < RankBase+BoardSize
}

// Direction is a unit step for ray walking.
type Direction struct {
	DF, DR int
}

var (
	// OrthogonalDirections are the four rook rays.
	OrthogonalDirections = []Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	// DiagonalDirections are the four bishop rays.
	DiagonalDirections = []Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	// KnightOffsets are the eight knight L-jumps.
	KnightOffsets = []Direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

	// KingOffsets are the eight adjacent steps.
	KingOffsets = []Direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)
