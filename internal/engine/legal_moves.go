package engine

import "github.com/lgbarn/sanchess-go/internal/chess"

// promotionKinds lists the pieces a pawn may become, strongest first.
var promotionKinds = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	found := false
	forEachLegalMove(pos, func(*chess.VerifiedMove) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves returns every legal move of the side to move. Promotions are
// listed once per promotion piece.
func LegalMoves(pos *chess.Position) []*chess.VerifiedMove {
	var moves []*chess.VerifiedMove
	forEachLegalMove(pos, func(vm *chess.VerifiedMove) bool {
		moves = append(moves, vm)
		return true
	})
	return moves
}

// forEachLegalMove calls fn with each legal move until fn returns false.
func forEachLegalMove(pos *chess.Position, fn func(*chess.VerifiedMove) bool) {
	colour := pos.ToMove
	for kind := chess.Pawn; kind <= chess.King; kind++ {
		for _, from := range pos.Pieces.SquaresOf(colour, kind) {
			for _, vm := range pseudoLegalMoves(pos, kind, from) {
				if !leavesKingSafe(pos, vm) {
					continue
				}
				if !emit(vm, fn) {
					return
				}
			}
		}
	}

	// Castling is never the only legal move (the king could step to the
	// transit square instead), but full listings include it.
	for _, class := range []chess.MoveClass{chess.KingsideCastle, chess.QueensideCastle} {
		if vm, err := verifyCastle(pos, &chess.Move{Class: class, Piece: chess.King, To: chess.NoSquare}); err == nil {
			if !fn(vm) {
				return
			}
		}
	}
}

// emit passes vm to fn, expanding pawn moves to the last rank into one move
// per promotion piece.
func emit(vm *chess.VerifiedMove, fn func(*chess.VerifiedMove) bool) bool {
	if vm.Piece != chess.Pawn || vm.Target.Rank != vm.Colour.PromotionRank() {
		return fn(vm)
	}
	for _, kind := range promotionKinds {
		promoted := *vm
		promoted.Promotion = kind
		if !fn(&promoted) {
			return false
		}
	}
	return true
}

// pseudoLegalMoves lists the moves of one piece that follow its movement
// pattern, without checking whether they expose the king.
func pseudoLegalMoves(pos *chess.Position, kind chess.PieceKind, from chess.Square) []*chess.VerifiedMove {
	board := pos.Board()
	colour := pos.ToMove
	var moves []*chess.VerifiedMove

	add := func(to chess.Square) {
		occ := board.Occupant(to)
		if !occ.IsEmpty() && occ.Colour == colour {
			return
		}
		moves = append(moves, &chess.VerifiedMove{
			Move:     chess.Move{Class: chess.NormalMove, Piece: kind, Capture: !occ.IsEmpty(), To: to},
			Colour:   colour,
			From:     from,
			Target:   to,
			Captured: occ.Kind,
		})
	}

	switch kind {
	case chess.Pawn:
		fwd := colour.Forward()
		targets := []struct {
			to      chess.Square
			capture bool
		}{
			{from.Offset(0, fwd), false},
			{from.Offset(0, 2*fwd), false},
			{from.Offset(-1, fwd), true},
			{from.Offset(1, fwd), true},
		}
		for _, t := range targets {
			if !t.to.OnBoard() {
				continue
			}
			how := canPawnMove(pos, colour, from, t.to, t.capture)
			if how == noPawnMove {
				continue
			}
			vm := &chess.VerifiedMove{
				Move:          chess.Move{Class: chess.NormalMove, Piece: chess.Pawn, Capture: t.capture, To: t.to},
				Colour:        colour,
				From:          from,
				Target:        t.to,
				Captured:      board.Occupant(t.to).Kind,
				SetsEnPassant: how == pawnDoublePush,
			}
			if how == pawnEnPassant {
				vm.EnPassant = true
				vm.Captured = chess.Pawn
			}
			moves = append(moves, vm)
		}

	case chess.Knight, chess.King:
		offsets := chess.KnightOffsets
		if kind == chess.King {
			offsets = chess.KingOffsets
		}
		for _, off := range offsets {
			if to := from.Offset(off.DF, off.DR); to.OnBoard() {
				add(to)
			}
		}

	case chess.Bishop, chess.Rook, chess.Queen:
		var dirs []chess.Direction
		if kind != chess.Rook {
			dirs = append(dirs, chess.DiagonalDirections...)
		}
		if kind != chess.Bishop {
			dirs = append(dirs, chess.OrthogonalDirections...)
		}
		for _, dir := range dirs {
			for to := from.Offset(dir.DF, dir.DR); to.OnBoard(); to = to.Offset(dir.DF, dir.DR) {
				add(to)
				if !board.Occupant(to).IsEmpty() {
					break // Blocked
				}
			}
		}
	}

	return moves
}
