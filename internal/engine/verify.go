package engine

import (
	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/errors"
)

// Verify checks a parsed move against the position and resolves it to a
// unique origin. The position is not modified.
//
// hint supplies the promotion piece when the move text left it implicit;
// pass chess.NoPiece when none has been chosen yet. A pawn reaching the
// last rank without an explicit or hinted piece fails with
// ErrPromotionRequired so the caller can ask and verify again.
func Verify(pos *chess.Position, move *chess.Move, hint chess.PieceKind) (*chess.VerifiedMove, error) {
	if move == nil {
		return nil, &errors.MoveError{Err: errors.ErrNoLegalOrigin, Side: pos.ToMove.String()}
	}
	if move.IsCastle() {
		return verifyCastle(pos, move)
	}
	if !move.To.OnBoard() {
		return nil, &errors.ParseError{Err: errors.ErrTargetOffBoard, Input: move.Text}
	}

	colour := pos.ToMove
	if err := checkTargetOccupancy(pos, move); err != nil {
		return nil, err
	}

	candidates := findSources(pos, move)
	if len(candidates) == 0 {
		return nil, moveError(pos, move, errors.ErrNoLegalOrigin)
	}

	if move.Piece == chess.King && !containsSquare(SafeKingMoves(pos.Board(), colour, candidates[0].From), move.To) {
		return nil, moveError(pos, move, errors.ErrWouldLeaveKingInCheck)
	}

	// When the text leaves more than one origin, those that would expose the
	// king are dropped before declaring the move ambiguous.
	var legal []*chess.VerifiedMove
	for _, vm := range candidates {
		if leavesKingSafe(pos, vm) {
			legal = append(legal, vm)
		}
	}
	switch {
	case len(legal) == 0:
		return nil, moveError(pos, move, errors.ErrWouldLeaveKingInCheck)
	case len(legal) > 1:
		err := moveError(pos, move, errors.ErrAmbiguousOrigin)
		for _, vm := range legal {
			err.Candidates = append(err.Candidates, vm.From.String())
		}
		return nil, err
	}

	vm := legal[0]
	if err := resolvePromotion(pos, move, vm, hint); err != nil {
		return nil, err
	}
	return vm, nil
}

// checkTargetOccupancy matches the target square's content against the
// capture marker.
func checkTargetOccupancy(pos *chess.Position, move *chess.Move) error {
	occ := pos.Board().Occupant(move.To)
	switch {
	case !occ.IsEmpty() && occ.Colour == pos.ToMove:
		return moveError(pos, move, errors.ErrIllegalForPieceKind)
	case !occ.IsEmpty() && !move.Capture:
		return moveError(pos, move, errors.ErrIllegalForPieceKind)
	case occ.IsEmpty() && move.Capture:
		if ep, ok := pos.EnPassantSquare(); ok && move.Piece == chess.Pawn && move.To == ep {
			return nil
		}
		return moveError(pos, move, errors.ErrIllegalForPieceKind)
	}
	return nil
}

// findSources returns every piece of the moving kind whose movement pattern
// reaches the target, narrowed by the disambiguator.
func findSources(pos *chess.Position, move *chess.Move) []*chess.VerifiedMove {
	colour := pos.ToMove
	board := pos.Board()
	var found []*chess.VerifiedMove

	for _, from := range pos.Pieces.SquaresOf(colour, move.Piece) {
		if !matchesDisambiguator(from, move.Disambiguator) || !matchesDisambiguator(from, move.DisambiguatorRank) {
			continue
		}

		vm := &chess.VerifiedMove{
			Move:   *move,
			Colour: colour,
			From:   from,
			Target: move.To,
		}

		if move.Piece == chess.Pawn {
			switch canPawnMove(pos, colour, from, move.To, move.Capture) {
			case noPawnMove:
				continue
			case pawnDoublePush:
				vm.SetsEnPassant = true
			case pawnEnPassant:
				vm.EnPassant = true
				vm.Captured = chess.Pawn
			}
		} else if !canPieceMove(board, move.Piece, from, move.To) {
			continue
		}

		if !vm.EnPassant {
			vm.Captured = board.Occupant(move.To).Kind
		}
		vm.Promotion = chess.NoPiece
		vm.PromotionImplicit = false
		found = append(found, vm)
	}
	return found
}

// matchesDisambiguator reports whether from agrees with a SAN file letter or
// rank digit. A zero disambiguator matches every square.
func matchesDisambiguator(from chess.Square, d byte) bool {
	switch {
	case d == 0:
		return true
	case chess.IsFileLetter(d):
		return from.FileLetter() == d
	case chess.IsRankDigit(d):
		return from.RankDigit() == d
	}
	return false
}

// resolvePromotion fills in the promotion piece of a verified pawn move.
func resolvePromotion(pos *chess.Position, move *chess.Move, vm *chess.VerifiedMove, hint chess.PieceKind) error {
	promotes := move.Piece == chess.Pawn && move.To.Rank == vm.Colour.PromotionRank()
	if !promotes {
		if move.Promotion != chess.NoPiece && !move.PromotionImplicit {
			return moveError(pos, move, errors.ErrPromotionNotAllowed)
		}
		return nil
	}

	choice := move.Promotion
	if move.PromotionImplicit || choice == chess.NoPiece {
		choice = hint
	}
	if choice == chess.NoPiece {
		return moveError(pos, move, errors.ErrPromotionRequired)
	}
	if !choice.IsPromotable() {
		return moveError(pos, move, errors.ErrPromotionNotAllowed)
	}
	vm.Promotion = choice
	return nil
}

// leavesKingSafe plays the move on a scratch copy of the registry and
// reports whether the mover's king is then free of attack.
func leavesKingSafe(pos *chess.Position, vm *chess.VerifiedMove) bool {
	scratch := pos.Pieces.Clone()
	if err := movePieces(scratch, vm); err != nil {
		return false
	}
	kingSq, ok := scratch.KingSquare(vm.Colour)
	if !ok {
		return false
	}
	return !IsAttacked(scratch.Board(), vm.Colour, kingSq)
}

// moveError builds a MoveError carrying the side to move and move text.
func moveError(pos *chess.Position, move *chess.Move, err error) *errors.MoveError {
	return &errors.MoveError{Err: err, MoveText: move.Text, Side: pos.ToMove.String()}
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
