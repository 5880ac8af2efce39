package chess

import (
	"fmt"

	"github.com/lgbarn/sanchess-go/internal/errors"
)

// Registry is the authoritative record of where every live piece stands,
// grouped by colour and kind. It also maintains the Board projection so
// occupancy queries are O(1); the board is never written any other way.
type Registry struct {
	groups [2][NumPieceKinds][]Square
	board  Board
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewInitialRegistry creates a registry holding the standard starting position.
func NewInitialRegistry() *Registry {
	r := NewRegistry()
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{White, Black} {
		for file, kind := range backRank {
			r.place(colour, kind, Sq(file, colour.HomeRank()))
		}
		for file := 0; file < BoardSize; file++ {
			r.place(colour, Pawn, Sq(file, colour.PawnRank()))
		}
	}
	return r
}

// Board returns the occupancy projection.
func (r *Registry) Board() *Board {
	return &r.board
}

// SquaresOf returns the live squares of the given colour and kind.
// The returned slice is a copy.
func (r *Registry) SquaresOf(colour Colour, kind PieceKind) []Square {
	group := r.groups[colour][kind]
	out := make([]Square, len(group))
	copy(out, group)
	return out
}

// Count returns the number of live pieces of the given colour and kind.
func (r *Registry) Count(colour Colour, kind PieceKind) int {
	return len(r.groups[colour][kind])
}

// KingSquare returns the square of the colour's king.
func (r *Registry) KingSquare(colour Colour) (Square, bool) {
	group := r.groups[colour][King]
	if len(group) != 1 {
		return NoSquare, false
	}
	return group[0], true
}

// MovePiece moves a piece of the given colour and kind from one square to
// another. The destination must not hold a piece of the same colour; an
// enemy piece there must have been removed first.
func (r *Registry) MovePiece(colour Colour, kind PieceKind, from, to Square) error {
	idx := r.indexOf(colour, kind, from)
	if idx < 0 {
		return &errors.IntegrityError{Op: "move_piece", Square: from.String(),
			Detail: fmt.Sprintf("no %s %s", colour, kind)}
	}
	if !to.OnBoard() {
		return &errors.IntegrityError{Op: "move_piece", Square: to.String(), Detail: "destination off board"}
	}
	if occ := r.board.Occupant(to); !occ.IsEmpty() {
		detail := "destination occupied"
		if occ.Colour == colour {
			detail = fmt.Sprintf("destination owned by %s", colour)
		}
		return &errors.IntegrityError{Op: "move_piece", Square: to.String(), Detail: detail}
	}
	r.groups[colour][kind][idx] = to
	r.board.set(from, Empty)
	r.board.set(to, Cell{Colour: colour, Kind: kind})
	return nil
}

// RemovePiece removes a piece of the given colour and kind.
func (r *Registry) RemovePiece(colour Colour, kind PieceKind, at Square) error {
	idx := r.indexOf(colour, kind, at)
	if idx < 0 {
		return &errors.IntegrityError{Op: "remove_piece", Square: at.String(),
			Detail: fmt.Sprintf("no %s %s", colour, kind)}
	}
	group := r.groups[colour][kind]
	r.groups[colour][kind] = append(group[:idx:idx], group[idx+1:]...)
	r.board.set(at, Empty)
	return nil
}

// AddPiece places a new piece on an empty square.
func (r *Registry) AddPiece(colour Colour, kind PieceKind, at Square) error {
	if kind == NoPiece || kind >= NumPieceKinds {
		return &errors.IntegrityError{Op: "add_piece", Square: at.String(), Detail: "invalid piece kind"}
	}
	if !at.OnBoard() {
		return &errors.IntegrityError{Op: "add_piece", Square: at.String(), Detail: "square off board"}
	}
	if !r.board.Occupant(at).IsEmpty() {
		return &errors.IntegrityError{Op: "add_piece", Square: at.String(), Detail: "square occupied"}
	}
	r.place(colour, kind, at)
	return nil
}

// Clone returns a deep copy suitable for speculative evaluation.
func (r *Registry) Clone() *Registry {
	c := &Registry{board: r.board}
	for colour := range r.groups {
		for kind := range r.groups[colour] {
			if g := r.groups[colour][kind]; g != nil {
				c.groups[colour][kind] = append([]Square(nil), g...)
			}
		}
	}
	return c
}

// Validate checks the registry invariants: exactly one king per colour,
// every square on board and owned by one piece, and the board projection
// agreeing with the groups.
func (r *Registry) Validate() error {
	var seen Board
	for _, colour := range []Colour{White, Black} {
		if n := len(r.groups[colour][King]); n != 1 {
			return &errors.IntegrityError{Op: "validate", Detail: fmt.Sprintf("%s has %d kings", colour, n)}
		}
		for kind := Pawn; kind < NumPieceKinds; kind++ {
			for _, sq := range r.groups[colour][kind] {
				if !sq.OnBoard() {
					return &errors.IntegrityError{Op: "validate", Square: sq.String(), Detail: "square off board"}
				}
				if !seen.Occupant(sq).IsEmpty() {
					return &errors.IntegrityError{Op: "validate", Square: sq.String(), Detail: "square shared"}
				}
				seen.set(sq, Cell{Colour: colour, Kind: kind})
			}
		}
	}
	if seen != r.board {
		return &errors.IntegrityError{Op: "validate", Detail: "board out of sync with registry"}
	}
	return nil
}

func (r *Registry) place(colour Colour, kind PieceKind, at Square) {
	r.groups[colour][kind] = append(r.groups[colour][kind], at)
	r.board.set(at, Cell{Colour: colour, Kind: kind})
}

func (r *Registry) indexOf(colour Colour, kind PieceKind, sq Square) int {
	for i, s := range r.groups[colour][kind] {
		if s == sq {
			return i
		}
	}
	return -1
}
