package engine

import (
	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/parser"
)

// Play parses a SAN move, verifies it and applies it to the position.
// hint is passed through to Verify for implicit promotions. The position is
// only changed when the move is accepted.
func Play(pos *chess.Position, text string, hint chess.PieceKind) (*chess.VerifiedMove, error) {
	move, err := parser.ParseSAN(text)
	if err != nil {
		return nil, err
	}
	vm, err := Verify(pos, move, hint)
	if err != nil {
		return nil, err
	}
	if err := ApplyMove(pos, vm); err != nil {
		return nil, err
	}
	return vm, nil
}

// PlayAll plays a sequence of SAN moves, stopping at the first rejected one.
// It returns how many moves were applied.
func PlayAll(pos *chess.Position, moves ...string) (int, error) {
	for i, text := range moves {
		if _, err := Play(pos, text, chess.NoPiece); err != nil {
			return i, err
		}
	}
	return len(moves), nil
}
