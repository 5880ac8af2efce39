package chess

// MoveClass categorizes SAN moves.
type MoveClass int

const (
	NormalMove MoveClass = iota
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case KingsideCastle:
		return "KingsideCastle"
	case QueensideCastle:
		return "QueensideCastle"
	default:
		return "Normal"
	}
}

// Move is a parsed SAN move: what the text says, before it has been
// resolved against a position.
type Move struct {
	// The move text as given (e.g. "Nbd2", "exd6", "O-O").
	Text string

	// Class of move (normal or castling).
	Class MoveClass

	// The piece being moved; Pawn when SAN omits a piece letter, King for castling.
	Piece PieceKind

	// Whether the text marks a capture.
	Capture bool

	// Destination square (only meaningful for NormalMove).
	To Square

	// A file letter or rank digit restricting the origin, or 0.
	Disambiguator byte

	// The rank digit of a full origin square ("Qh4e1"); Disambiguator then
	// holds the file.
	DisambiguatorRank byte

	// The piece promoted to. Queen by default on a pawn move to a last rank,
	// NoPiece otherwise.
	Promotion PieceKind

	// PromotionImplicit is set when a pawn move reaches a last rank without
	// "=X"; the caller must choose the promotion piece.
	PromotionImplicit bool
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// CastlingSide returns the side of a castling move.
func (m *Move) CastlingSide() CastlingSide {
	if m.Class == QueensideCastle {
		return Queenside
	}
	return Kingside
}

// VerifiedMove is a move that has been checked against a position and can
// be applied to it.
type VerifiedMove struct {
	Move

	// Colour making the move.
	Colour Colour

	// Resolved origin square (the king's square for castling).
	From Square

	// Resolved destination (the king's destination for castling).
	Target Square

	// Kind of the piece captured, NoPiece if none.
	Captured PieceKind

	// EnPassant is set when the capture takes a pawn standing beside the
	// target rather than on it.
	EnPassant bool

	// SetsEnPassant is set on a pawn double push.
	SetsEnPassant bool
}

// CaptureSquare returns the square of the captured piece.
func (v *VerifiedMove) CaptureSquare() Square {
	if v.EnPassant {
		return Sq(v.Target.File, v.From.Rank)
	}
	return v.Target
}

// IsPromotion reports whether the move promotes a pawn.
func (v *VerifiedMove) IsPromotion() bool {
	return v.Piece == Pawn && v.Promotion != NoPiece
}
