package engine

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/errors"
)

func mustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) failed: %v", fen, err)
	}
	return pos
}

func TestNewPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				b := p.Board()
				return b.Get('e', '1') == chess.W(chess.King) &&
					b.Get('e', '8') == chess.B(chess.King) &&
					b.Get('e', '2') == chess.W(chess.Pawn) &&
					b.Get('e', '7') == chess.B(chess.Pawn) &&
					p.ToMove == chess.White &&
					p.Castling == chess.AllCastling &&
					p.EnPassantFile == chess.NoEnPassant
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				b := p.Board()
				return b.Get('e', '4') == chess.W(chess.Pawn) &&
					b.Get('e', '2') == chess.Empty &&
					p.ToMove == chess.Black &&
					p.EnPassantFile == 4
			},
		},
		{
			name: "sicilian defense",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(p *chess.Position) bool {
				b := p.Board()
				return b.Get('c', '5') == chess.B(chess.Pawn) &&
					p.ToMove == chess.White &&
					p.EnPassantFile == 2 &&
					p.MoveNumber == 2
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Castling == chess.NoCastling
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b Kq - 5 12",
			checkFn: func(p *chess.Position) bool {
				return p.Castling == chess.WhiteKingside|chess.BlackQueenside &&
					p.HalfmoveClock == 5 &&
					p.MoveNumber == 12
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(p *chess.Position) bool {
				return p.ToMove == chess.White && p.Castling == chess.NoCastling && p.MoveNumber == 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPositionFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN() error = %v", err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("NewPositionFromFEN() position check failed")
			}
			if err := pos.Pieces.Validate(); err != nil {
				t.Errorf("registry invalid: %v", err)
			}
		})
	}
}

func TestNewPositionFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few ranks", "8/8/8/8/8/8/4K3 w - - 0 1"},
		{"rank too long", "4k4/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"rank too short", "4k2/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad piece letter", "4k3/8/8/8/8/8/8/4K2X w - - 0 1"},
		{"non-ASCII piece letter", "4k3/8/8/8/8/8/Ő7/4K3 w - - 0 1"},
		{"non-ASCII lowercase piece letter", "4k3/8/8/8/8/8/ő7/4K3 w - - 0 1"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"missing black king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"pawn on back rank", "4k2P/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4K2r b - - 0 1"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1"},
		{"castling with moved king", "r3k2r/8/8/8/8/8/8/R4K1R w KQ - 0 1"},
		{"bad castling letter", "r3k2r/8/8/8/8/8/8/R3K2R w X - 0 1"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1"},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1"},
		{"en passant bad square", "4k3/8/8/8/8/8/8/4K3 b - z9 0 1"},
		{"bad halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPositionFromFEN(tt.fen)
			if err == nil {
				t.Fatalf("NewPositionFromFEN(%q) = %v, want error", tt.fen, PositionToFEN(pos))
			}
			if !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("error %v does not wrap ErrInvalidFEN", err)
			}
			if stderrors.Is(err, errors.ErrIntegrity) {
				t.Errorf("error %v should not be an integrity error", err)
			}
		})
	}
}

func TestPositionToFEN(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b - - 17 63",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos := mustPosition(t, fen)
			if got := PositionToFEN(pos); got != fen {
				t.Errorf("PositionToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestNewGameMatchesInitialFEN(t *testing.T) {
	fromFEN := mustPosition(t, InitialFEN)
	game := NewGame()
	if diff := cmp.Diff(PositionToFEN(fromFEN), PositionToFEN(game)); diff != "" {
		t.Errorf("NewGame() mismatch (-fen +game):\n%s", diff)
	}
	if *fromFEN.Board() != *game.Board() {
		t.Error("NewGame() board differs from InitialFEN board")
	}
}

func TestPlay_FENSequence(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		san     string
		wantFEN string
	}{
		{
			name:    "1.e4",
			fen:     InitialFEN,
			san:     "e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "1...c5",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			san:     "c5",
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		},
		{
			name:    "knight move ticks the halfmove clock",
			fen:     "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			san:     "Nf3",
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:    "white castles kingside",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			san:     "O-O",
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:    "black castles queenside",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
			san:     "O-O-O",
			wantFEN: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 w - - 2 2",
		},
		{
			name:    "rook capture on corner clears the right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			san:     "Rxa8+",
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if _, err := Play(pos, tt.san, chess.NoPiece); err != nil {
				t.Fatalf("Play(%s) failed: %v", tt.san, err)
			}
			if got := PositionToFEN(pos); got != tt.wantFEN {
				t.Errorf("after %s:\n got %q\nwant %q", tt.san, got, tt.wantFEN)
			}
		})
	}
}
