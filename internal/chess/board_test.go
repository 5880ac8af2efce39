package chess

import (
	"testing"
)

func TestInitialBoardProjection(t *testing.T) {
	b := NewInitialRegistry().Board()

	tests := []struct {
		name string
		file byte
		rank byte
		cell Cell
	}{
		// White back rank
		{"white rook a1", 'a', '1', W(Rook)},
		{"white knight b1", 'b', '1', W(Knight)},
		{"white bishop c1", 'c', '1', W(Bishop)},
		{"white queen d1", 'd', '1', W(Queen)},
		{"white king e1", 'e', '1', W(King)},
		{"white bishop f1", 'f', '1', W(Bishop)},
		{"white knight g1", 'g', '1', W(Knight)},
		{"white rook h1", 'h', '1', W(Rook)},
		// Pawns
		{"white pawn a2", 'a', '2', W(Pawn)},
		{"white pawn e2", 'e', '2', W(Pawn)},
		{"black pawn a7", 'a', '7', B(Pawn)},
		{"black pawn h7", 'h', '7', B(Pawn)},
		// Black back rank
		{"black rook a8", 'a', '8', B(Rook)},
		{"black queen d8", 'd', '8', B(Queen)},
		{"black king e8", 'e', '8', B(King)},
		{"black knight g8", 'g', '8', B(Knight)},
		// Empty squares
		{"empty e3", 'e', '3', Empty},
		{"empty d4", 'd', '4', Empty},
		{"empty c6", 'c', '6', Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.file, tt.rank); got != tt.cell {
				t.Errorf("Get(%c, %c) = %v; want %v", tt.file, tt.rank, got, tt.cell)
			}
		})
	}
}

func TestBoardQueries(t *testing.T) {
	b := NewInitialRegistry().Board()

	t.Run("off board reads empty", func(t *testing.T) {
		if got := b.Occupant(Sq(-1, 0)); !got.IsEmpty() {
			t.Errorf("Occupant(-1,0) = %v; want Empty", got)
		}
		if b.IsEmpty(Sq(8, 3)) {
			t.Error("IsEmpty(off board) = true; want false")
		}
	})

	t.Run("colour at", func(t *testing.T) {
		if c, ok := b.ColourAt(MustSquare("g8")); !ok || c != Black {
			t.Errorf("ColourAt(g8) = %v, %v; want Black, true", c, ok)
		}
		if c, ok := b.ColourAt(MustSquare("b2")); !ok || c != White {
			t.Errorf("ColourAt(b2) = %v, %v; want White, true", c, ok)
		}
		if _, ok := b.ColourAt(MustSquare("e5")); ok {
			t.Error("ColourAt(e5) reported a piece on an empty square")
		}
	})

	t.Run("cell is", func(t *testing.T) {
		if !b.Occupant(MustSquare("d8")).Is(Black, Queen) {
			t.Error("d8 should hold the black queen")
		}
		if Empty.Is(White, NoPiece) {
			t.Error("Empty.Is(White, NoPiece) = true; want false")
		}
	})
}

func TestSquare(t *testing.T) {
	tests := []struct {
		text string
		want Square
		ok   bool
	}{
		{"a1", Sq(0, 0), true},
		{"h8", Sq(7, 7), true},
		{"e4", Sq(4, 3), true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"a0", NoSquare, false},
		{"e10", NoSquare, false},
		{"", NoSquare, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseSquare(tt.text)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v, %v", tt.text, got, ok, tt.want, tt.ok)
			}
			if ok && got.String() != tt.text {
				t.Errorf("String() = %q; want %q", got.String(), tt.text)
			}
		})
	}

	if got := MustSquare("b1").Offset(1, 2); got != MustSquare("c3") {
		t.Errorf("b1.Offset(1,2) = %v; want c3", got)
	}
	if Sq(3, -1).OnBoard() {
		t.Error("d0 reported on board")
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q; want -", NoSquare.String())
	}
}

func TestColourHelpers(t *testing.T) {
	tests := []struct {
		colour                          Colour
		forward, home, pawns, promotion int
		opposite                        Colour
	}{
		{White, 1, 0, 1, 7, Black},
		{Black, -1, 7, 6, 0, White},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := tt.colour.Forward(); got != tt.forward {
				t.Errorf("Forward() = %d; want %d", got, tt.forward)
			}
			if got := tt.colour.HomeRank(); got != tt.home {
				t.Errorf("HomeRank() = %d; want %d", got, tt.home)
			}
			if got := tt.colour.PawnRank(); got != tt.pawns {
				t.Errorf("PawnRank() = %d; want %d", got, tt.pawns)
			}
			if got := tt.colour.PromotionRank(); got != tt.promotion {
				t.Errorf("PromotionRank() = %d; want %d", got, tt.promotion)
			}
			if got := tt.colour.Opposite(); got != tt.opposite {
				t.Errorf("Opposite() = %v; want %v", got, tt.opposite)
			}
		})
	}
}

func TestPieceKindLetters(t *testing.T) {
	for kind := Knight; kind <= King; kind++ {
		if got := KindFromLetter(kind.Letter()); got != kind {
			t.Errorf("KindFromLetter(%c) = %v; want %v", kind.Letter(), got, kind)
		}
	}
	if KindFromLetter('P') != NoPiece {
		t.Error("KindFromLetter('P') should not name a piece")
	}
	if KindFromLetter('n') != NoPiece {
		t.Error("piece letters are case-sensitive")
	}
	if Pawn.IsPromotable() || King.IsPromotable() {
		t.Error("pawns and kings are not promotion pieces")
	}
}
