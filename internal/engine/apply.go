package engine

import (
	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/errors"
)

// ApplyMove applies a verified move to the position. The update is atomic:
// it is built on a copy and committed only when every invariant holds, so
// on error the position is unchanged.
func ApplyMove(pos *chess.Position, vm *chess.VerifiedMove) error {
	if vm == nil {
		return &errors.IntegrityError{Op: "apply", Detail: "nil move"}
	}
	if vm.Colour != pos.ToMove {
		return &errors.IntegrityError{Op: "apply", Square: vm.From.String(),
			Detail: vm.Colour.String() + " move played with " + pos.ToMove.String() + " to move"}
	}

	next := pos.Clone()
	if err := movePieces(next.Pieces, vm); err != nil {
		return err
	}

	next.EnPassantFile = chess.NoEnPassant
	if vm.SetsEnPassant {
		next.EnPassantFile = vm.From.File
	}

	next.Castling = updateCastlingRights(next.Castling, vm)

	if vm.Piece == chess.Pawn || vm.Captured != chess.NoPiece {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if vm.Colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = vm.Colour.Opposite()

	if err := next.Pieces.Validate(); err != nil {
		return err
	}
	if IsInCheck(next, vm.Colour) {
		return &errors.IntegrityError{Op: "apply", Detail: vm.Colour.String() + " king left in check"}
	}

	*pos = *next
	return nil
}

// movePieces performs the registry side of a move: capture, the piece
// itself (or its promotion) and the rook of a castling move.
func movePieces(reg *chess.Registry, vm *chess.VerifiedMove) error {
	if vm.IsCastle() {
		if err := reg.MovePiece(vm.Colour, chess.King, vm.From, vm.Target); err != nil {
			return err
		}
		rookFrom, rookTo := rookCastlingSquares(vm.Colour, vm.CastlingSide())
		return reg.MovePiece(vm.Colour, chess.Rook, rookFrom, rookTo)
	}

	if vm.Captured != chess.NoPiece {
		if err := reg.RemovePiece(vm.Colour.Opposite(), vm.Captured, vm.CaptureSquare()); err != nil {
			return err
		}
	}

	if vm.IsPromotion() {
		if err := reg.RemovePiece(vm.Colour, chess.Pawn, vm.From); err != nil {
			return err
		}
		return reg.AddPiece(vm.Colour, vm.Promotion, vm.Target)
	}
	return reg.MovePiece(vm.Colour, vm.Piece, vm.From, vm.Target)
}
