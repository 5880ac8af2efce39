package testutil

import (
	"testing"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/engine"
)

// MustPosition loads a FEN string. It calls t.Fatal if the FEN is rejected.
func MustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) failed: %v", fen, err)
	}
	return pos
}

// MustPlay plays a sequence of SAN moves on pos, promoting implicitly to a
// Queen. It calls t.Fatal at the first move the engine rejects.
func MustPlay(t *testing.T, pos *chess.Position, sans ...string) *chess.Position {
	t.Helper()
	for i, san := range sans {
		if _, err := engine.Play(pos, san, chess.Queen); err != nil {
			t.Fatalf("move %d (%s) rejected: %v", i+1, san, err)
		}
	}
	return pos
}

// PlayFromStart plays a sequence of SAN moves from the initial position.
func PlayFromStart(t *testing.T, sans ...string) *chess.Position {
	t.Helper()
	return MustPlay(t, engine.NewGame(), sans...)
}
