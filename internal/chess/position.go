package chess

// CastlingSide selects kingside or queenside castling.
type CastlingSide uint8

const (
	Kingside CastlingSide = iota
	Queenside
)

// String returns the string representation of a castling side.
func (s CastlingSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// RookHomeFile returns the file of the rook that castles on this side.
func (s CastlingSide) RookHomeFile() int {
	if s == Kingside {
		return 7
	}
	return 0
}

// KingTargetFile returns the file the king lands on.
func (s CastlingSide) KingTargetFile() int {
	if s == Kingside {
		return 6
	}
	return 2
}

// RookTargetFile returns the file the rook lands on.
func (s CastlingSide) RookTargetFile() int {
	if s == Kingside {
		return 5
	}
	return 3
}

// KingHomeFile is the file both kings start on.
const KingHomeFile = 4

// CastlingRights holds one bit per colour and side. Bits are only ever
// cleared once a game is under way.
type CastlingRights uint8

// Castling right bits.
const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingBit returns the bit for the given colour and side.
func CastlingBit(colour Colour, side CastlingSide) CastlingRights {
	bit := WhiteKingside
	if side == Queenside {
		bit = WhiteQueenside
	}
	if colour == Black {
		bit <<= 2
	}
	return bit
}

// Has reports whether the right for colour and side is still held.
func (c CastlingRights) Has(colour Colour, side CastlingSide) bool {
	return c&CastlingBit(colour, side) != 0
}

// Without returns the rights with the given colour and side cleared.
func (c CastlingRights) Without(colour Colour, side CastlingSide) CastlingRights {
	return c &^ CastlingBit(colour, side)
}

// String returns the FEN castling field ("KQkq", "-", ...).
func (c CastlingRights) String() string {
	var b []byte
	for _, e := range []struct {
		bit    CastlingRights
		letter byte
	}{{WhiteKingside, 'K'}, {WhiteQueenside, 'Q'}, {BlackKingside, 'k'}, {BlackQueenside, 'q'}} {
		if c&e.bit != 0 {
			b = append(b, e.letter)
		}
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// NoEnPassant is the en-passant file when no double push just happened.
const NoEnPassant = -1

// Position is the complete game state the rules engine works on.
type Position struct {
	// Pieces is the authoritative piece registry; Pieces.Board() is the
	// occupancy projection.
	Pieces *Registry

	// Who has the next move.
	ToMove Colour

	// File of a pawn that advanced two squares on the immediately previous
	// move, or NoEnPassant.
	EnPassantFile int

	// Remaining castling rights.
	Castling CastlingRights

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	return &Position{
		Pieces:        NewInitialRegistry(),
		ToMove:        White,
		EnPassantFile: NoEnPassant,
		Castling:      AllCastling,
		MoveNumber:    1,
	}
}

// Board returns the occupancy projection of the registry.
func (p *Position) Board() *Board {
	return p.Pieces.Board()
}

// Clone creates a deep copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	c.Pieces = p.Pieces.Clone()
	return &c
}

// EnPassantSquare returns the square a pawn of the side to move would land
// on when capturing en passant, if such a capture is available.
func (p *Position) EnPassantSquare() (Square, bool) {
	if p.EnPassantFile == NoEnPassant {
		return NoSquare, false
	}
	// The victim stands on the mover's fifth rank; the capture lands behind it.
	victimRank := p.ToMove.Opposite().PawnRank() + 2*p.ToMove.Opposite().Forward()
	return Sq(p.EnPassantFile, victimRank+p.ToMove.Forward()), true
}
