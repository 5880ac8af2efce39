package engine

import (
	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/errors"
)

// verifyCastle checks a castling move: the right must still be held, the
// king must not be in check, the squares between king and rook must be
// empty and the squares the king crosses and lands on must not be attacked.
func verifyCastle(pos *chess.Position, move *chess.Move) (*chess.VerifiedMove, error) {
	colour := pos.ToMove
	side := move.CastlingSide()
	rank := colour.HomeRank()
	board := pos.Board()

	kingFrom := chess.Sq(chess.KingHomeFile, rank)
	kingTo := chess.Sq(side.KingTargetFile(), rank)
	rookFrom := chess.Sq(side.RookHomeFile(), rank)

	if !pos.Castling.Has(colour, side) ||
		!board.Occupant(kingFrom).Is(colour, chess.King) ||
		!board.Occupant(rookFrom).Is(colour, chess.Rook) {
		return nil, moveError(pos, move, errors.ErrCastlingNotAvailable)
	}

	if IsAttacked(board, colour, kingFrom) {
		return nil, moveError(pos, move, errors.ErrCastlingThroughCheck)
	}

	if !isPathClear(board, kingFrom, rookFrom) {
		return nil, moveError(pos, move, errors.ErrCastlingPathBlocked)
	}

	vacated := withoutSquare{board: board, hole: kingFrom}
	step := sign(kingTo.File - kingFrom.File)
	for at := kingFrom.Offset(step, 0); ; at = at.Offset(step, 0) {
		if IsAttacked(vacated, colour, at) {
			return nil, moveError(pos, move, errors.ErrCastlingThroughCheck)
		}
		if at == kingTo {
			break
		}
	}

	return &chess.VerifiedMove{
		Move:   *move,
		Colour: colour,
		From:   kingFrom,
		Target: kingTo,
	}, nil
}

// rookCastlingSquares returns where the castling rook starts and lands.
func rookCastlingSquares(colour chess.Colour, side chess.CastlingSide) (from, to chess.Square) {
	rank := colour.HomeRank()
	return chess.Sq(side.RookHomeFile(), rank), chess.Sq(side.RookTargetFile(), rank)
}

// homeCorners maps each rook home square to the right it guards.
var homeCorners = []struct {
	sq     chess.Square
	colour chess.Colour
	side   chess.CastlingSide
}{
	{chess.Sq(7, 0), chess.White, chess.Kingside},
	{chess.Sq(0, 0), chess.White, chess.Queenside},
	{chess.Sq(7, 7), chess.Black, chess.Kingside},
	{chess.Sq(0, 7), chess.Black, chess.Queenside},
}

// updateCastlingRights removes the rights a move gives up: all of the
// mover's rights when the king moves, and the right tied to any home corner
// the move leaves from or lands on.
func updateCastlingRights(rights chess.CastlingRights, vm *chess.VerifiedMove) chess.CastlingRights {
	if vm.Piece == chess.King {
		rights = rights.Without(vm.Colour, chess.Kingside).Without(vm.Colour, chess.Queenside)
	}
	for _, corner := range homeCorners {
		if vm.From == corner.sq || vm.Target == corner.sq {
			rights = rights.Without(corner.colour, corner.side)
		}
	}
	return rights
}
