package engine

import "github.com/lgbarn/sanchess-go/internal/chess"

// canPieceMove checks if a non-pawn piece's movement pattern takes it from
// one square to another, with sliding pieces blocked by any piece in between.
// It does not look at the target square itself.
func canPieceMove(board Occupancy, kind chess.PieceKind, from, to chess.Square) bool {
	df := to.File - from.File
	dr := to.Rank - from.Rank
	colDiff := abs(df)
	rankDiff := abs(dr)

	switch kind {
	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff || colDiff == 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if (colDiff != 0 && rankDiff != 0) || colDiff+rankDiff == 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		return canPieceMove(board, chess.Bishop, from, to) || canPieceMove(board, chess.Rook, from, to)

	case chess.King:
		return max(colDiff, rankDiff) == 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(board Occupancy, from, to chess.Square) bool {
	colDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	for at := from.Offset(colDir, rankDir); at != to; at = at.Offset(colDir, rankDir) {
		if !board.Occupant(at).IsEmpty() {
			return false
		}
	}
	return true
}

// pawnMove describes how a pawn reaches its target.
type pawnMove int

const (
	noPawnMove pawnMove = iota
	pawnPush
	pawnDoublePush
	pawnCapture
	pawnEnPassant
)

// canPawnMove classifies a pawn move from one square to another. Pushes
// need an empty path and never capture; diagonal steps need capture set and
// either an enemy on the target or the en-passant square.
func canPawnMove(pos *chess.Position, colour chess.Colour, from, to chess.Square, capture bool) pawnMove {
	board := pos.Board()
	fwd := colour.Forward()
	df := to.File - from.File
	dr := to.Rank - from.Rank

	if !capture {
		if df != 0 || !board.IsEmpty(to) {
			return noPawnMove
		}
		switch dr {
		case fwd:
			return pawnPush
		case 2 * fwd:
			if from.Rank == colour.PawnRank() && board.IsEmpty(from.Offset(0, fwd)) {
				return pawnDoublePush
			}
		}
		return noPawnMove
	}

	if abs(df) != 1 || dr != fwd {
		return noPawnMove
	}
	if occ := board.Occupant(to); !occ.IsEmpty() {
		if occ.Colour != colour {
			return pawnCapture
		}
		return noPawnMove
	}
	if ep, ok := pos.EnPassantSquare(); ok && colour == pos.ToMove && to == ep {
		return pawnEnPassant
	}
	return noPawnMove
}
