package chess

// Cell is the content of one board square. The zero value is empty.
type Cell struct {
	Colour Colour
	Kind   PieceKind
}

// Empty is the empty cell.
var Empty = Cell{}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c.Kind == NoPiece
}

// Is reports whether the cell holds a piece of the given colour and kind.
func (c Cell) Is(colour Colour, kind PieceKind) bool {
	return c.Kind == kind && c.Kind != NoPiece && c.Colour == colour
}

// W creates a white cell.
func W(kind PieceKind) Cell {
	return Cell{Colour: White, Kind: kind}
}

// B creates a black cell.
func B(kind PieceKind) Cell {
	return Cell{Colour: Black, Kind: kind}
}

// Board is the 8x8 occupancy grid. It is a projection of a Registry and is
// only written through the registry's mutators.
type Board struct {
	// cells[file][rank]
	cells [BoardSize][BoardSize]Cell
}

// Occupant returns the cell at sq. Off-board squares read as empty.
func (b *Board) Occupant(sq Square) Cell {
	if !sq.OnBoard() {
		return Empty
	}
	return b.cells[sq.File][sq.Rank]
}

// ColourAt returns the colour of the piece on sq, if any.
func (b *Board) ColourAt(sq Square) (Colour, bool) {
	c := b.Occupant(sq)
	if c.IsEmpty() {
		return White, false
	}
	return c.Colour, true
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.OnBoard() && b.cells[sq.File][sq.Rank].IsEmpty()
}

// Get returns the cell at algebraic coordinates ('a'-'h', '1'-'8').
func (b *Board) Get(file, rank byte) Cell {
	return b.Occupant(Square{File: int(file - FileBase), Rank: int(rank - RankBase)})
}

func (b *Board) set(sq Square, c Cell) {
	b.cells[sq.File][sq.Rank] = c
}
