package engine

import "github.com/lgbarn/sanchess-go/internal/chess"

// Occupancy is a read-only view of board contents. *chess.Board satisfies it;
// the engine layers temporary views on top of it without copying.
type Occupancy interface {
	Occupant(sq chess.Square) chess.Cell
}

// withoutSquare reads as the underlying board with one square vacated.
type withoutSquare struct {
	board Occupancy
	hole  chess.Square
}

func (w withoutSquare) Occupant(sq chess.Square) chess.Cell {
	if sq == w.hole {
		return chess.Empty
	}
	return w.board.Occupant(sq)
}

// AttackersOf returns the squares of enemy pieces that attack sq, from the
// point of view of the defender. An attacker is any piece that could capture
// on sq with its next move, ignoring whether doing so would expose its own
// king. Rays stop at the first occupied square of either colour.
func AttackersOf(board Occupancy, defender chess.Colour, sq chess.Square) []chess.Square {
	var attackers []chess.Square
	enemy := defender.Opposite()

	// Rooks and queens along ranks and files
	for _, dir := range chess.OrthogonalDirections {
		if at, cell, ok := firstOccupied(board, sq, dir); ok && cell.Colour == enemy &&
			(cell.Kind == chess.Rook || cell.Kind == chess.Queen) {
			attackers = append(attackers, at)
		}
	}

	// Bishops and queens along diagonals, plus pawns one step away on
	// the diagonal they capture along
	for _, dir := range chess.DiagonalDirections {
		at, cell, ok := firstOccupied(board, sq, dir)
		if !ok || cell.Colour != enemy {
			continue
		}
		switch cell.Kind {
		case chess.Bishop, chess.Queen:
			attackers = append(attackers, at)
		case chess.Pawn:
			// The pawn must stand one step behind sq relative to its own forward direction.
			if at == sq.Offset(dir.DF, dir.DR) && dir.DR == -enemy.Forward() {
				attackers = append(attackers, at)
			}
		}
	}

	// Knights
	for _, off := range chess.KnightOffsets {
		at := sq.Offset(off.DF, off.DR)
		if at.OnBoard() && board.Occupant(at).Is(enemy, chess.Knight) {
			attackers = append(attackers, at)
		}
	}

	// Adjacent king
	for _, off := range chess.KingOffsets {
		at := sq.Offset(off.DF, off.DR)
		if at.OnBoard() && board.Occupant(at).Is(enemy, chess.King) {
			attackers = append(attackers, at)
		}
	}

	return attackers
}

// IsAttacked reports whether any enemy of defender attacks sq.
func IsAttacked(board Occupancy, defender chess.Colour, sq chess.Square) bool {
	return len(AttackersOf(board, defender, sq)) > 0
}

// SafeKingMoves returns the squares adjacent to kingSq that the king of the
// given colour may step to: on the board, not holding a friendly piece, and
// not attacked once the king has left kingSq. Vacating kingSq lets sliding
// attacks pass through it, so the king cannot retreat along the line of a
// checking rook, bishop or queen.
func SafeKingMoves(board Occupancy, colour chess.Colour, kingSq chess.Square) []chess.Square {
	var safe []chess.Square
	vacated := withoutSquare{board: board, hole: kingSq}
	for _, off := range chess.KingOffsets {
		to := kingSq.Offset(off.DF, off.DR)
		if !to.OnBoard() {
			continue
		}
		if occ := board.Occupant(to); !occ.IsEmpty() && occ.Colour == colour {
			continue
		}
		if !IsAttacked(vacated, colour, to) {
			safe = append(safe, to)
		}
	}
	return safe
}

// firstOccupied walks from sq (exclusive) in direction dir and returns the
// first occupied square, or false on reaching the board edge.
func firstOccupied(board Occupancy, sq chess.Square, dir chess.Direction) (chess.Square, chess.Cell, bool) {
	for at := sq.Offset(dir.DF, dir.DR); at.OnBoard(); at = at.Offset(dir.DF, dir.DR) {
		if cell := board.Occupant(at); !cell.IsEmpty() {
			return at, cell, true
		}
	}
	return chess.NoSquare, chess.Empty, false
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq, ok := pos.Pieces.KingSquare(colour)
	if !ok {
		return false
	}
	return IsAttacked(pos.Board(), colour, kingSq)
}

// Checkers returns the squares of the pieces giving check to colour's king.
func Checkers(pos *chess.Position, colour chess.Colour) []chess.Square {
	kingSq, ok := pos.Pieces.KingSquare(colour)
	if !ok {
		return nil
	}
	return AttackersOf(pos.Board(), colour, kingSq)
}
