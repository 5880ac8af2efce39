package engine

import "github.com/lgbarn/sanchess-go/internal/chess"

// Status is the condition of the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Classify determines the status of the side to move.
func Classify(pos *chess.Position) Status {
	inCheck := IsInCheck(pos, pos.ToMove)
	hasMoves := HasLegalMoves(pos)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case inCheck:
		return Check
	case !hasMoves:
		return Stalemate
	}
	return Ongoing
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// Winner returns the side that delivered mate. ok is false unless the side
// to move is checkmated.
func Winner(pos *chess.Position) (winner chess.Colour, ok bool) {
	if !IsCheckmate(pos) {
		return chess.White, false
	}
	return pos.ToMove.Opposite(), true
}
