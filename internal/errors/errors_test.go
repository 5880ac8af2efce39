package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrMalformedMove, ErrTargetOffBoard, ErrNoLegalOrigin, ErrAmbiguousOrigin,
		ErrIllegalForPieceKind, ErrWouldLeaveKingInCheck, ErrCastlingNotAvailable,
		ErrCastlingPathBlocked, ErrCastlingThroughCheck, ErrPromotionRequired,
		ErrPromotionNotAllowed, ErrIntegrity, ErrInvalidFEN, ErrInvalidConfig,
	}

	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("context: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
		}
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		contains []string
	}{
		{
			name:     "full context",
			err:      &ParseError{Err: ErrMalformedMove, Input: "Nf9", Column: 3},
			contains: []string{`"Nf9"`, "column 3", "malformed move"},
		},
		{
			name:     "no input",
			err:      &ParseError{Err: ErrTargetOffBoard},
			contains: []string{"target square off board"},
		},
		{
			name:     "nil underlying",
			err:      &ParseError{},
			contains: []string{"parse error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Error(t *testing.T) {
	err := &MoveError{
		Err:        ErrAmbiguousOrigin,
		MoveText:   "Nd2",
		Side:       "White",
		Candidates: []string{"b1", "f3"},
	}
	msg := err.Error()
	for _, s := range []string{"White", `"Nd2"`, "ambiguous move", "b1, f3"} {
		if !strings.Contains(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = fmt.Errorf("turn 3: %w", &MoveError{Err: ErrNoLegalOrigin, MoveText: "Qh5"})

	var me *MoveError
	if !errors.As(err, &me) {
		t.Fatal("errors.As(err, *MoveError) = false, want true")
	}
	if me.MoveText != "Qh5" {
		t.Errorf("MoveText = %q, want %q", me.MoveText, "Qh5")
	}
	if !errors.Is(err, ErrNoLegalOrigin) {
		t.Error("errors.Is(err, ErrNoLegalOrigin) = false, want true")
	}
}

func TestIntegrityError(t *testing.T) {
	err := &IntegrityError{Op: "move_piece", Square: "e4", Detail: "no white pawn"}

	if !errors.Is(err, ErrIntegrity) {
		t.Error("errors.Is(IntegrityError, ErrIntegrity) = false, want true")
	}
	want := "engine integrity violation: move_piece at e4: no white pawn"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"parse", &ParseError{Err: ErrMalformedMove}, true},
		{"verify", &MoveError{Err: ErrCastlingPathBlocked}, true},
		{"wrapped verify", Wrap(&MoveError{Err: ErrAmbiguousOrigin}, "play"), true},
		{"integrity", &IntegrityError{Op: "add_piece"}, false},
		{"bare sentinel", ErrInvalidFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecoverable(tt.err); got != tt.want {
				t.Errorf("IsRecoverable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidFEN, "loading %s", "start.fen")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("errors.Is(Wrapf(...), ErrInvalidFEN) = false, want true")
	}
	if !strings.HasPrefix(err.Error(), "loading start.fen: ") {
		t.Errorf("Wrapf().Error() = %q, want prefix %q", err.Error(), "loading start.fen: ")
	}
}
