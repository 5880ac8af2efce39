package output

import (
	"encoding/json"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/engine"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN        string                         `json:"fen"`
	ToMove     string                         `json:"toMove"` // "white" or "black"
	Status     string                         `json:"status"`
	Winner     string                         `json:"winner,omitempty"`
	MoveNumber uint                           `json:"moveNumber"`
	LastMove   *JSONMove                      `json:"lastMove,omitempty"`
	Pieces     map[string]map[string][]string `json:"pieces"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Color     string `json:"color"`
	SAN       string `json:"san,omitempty"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// SnapshotToJSON converts a snapshot to JSON format.
func SnapshotToJSON(snap *Snapshot) *JSONPosition {
	pos := snap.Position
	jp := &JSONPosition{
		FEN:        engine.PositionToFEN(pos),
		ToMove:     colorName(pos.ToMove),
		Status:     engine.Classify(pos).String(),
		MoveNumber: pos.MoveNumber,
		Pieces:     pieceLists(pos.Pieces),
	}
	if winner, ok := engine.Winner(pos); ok {
		jp.Winner = colorName(winner)
	}
	if snap.Move != nil {
		jp.LastMove = convertMove(snap.Move, snap.SAN)
	}
	return jp
}

// convertMove converts a verified move to JSON format.
func convertMove(vm *chess.VerifiedMove, san string) *JSONMove {
	jm := &JSONMove{
		Color:     colorName(vm.Colour),
		SAN:       san,
		From:      vm.From.String(),
		To:        vm.Target.String(),
		Piece:     pieceTypeName(vm.Piece),
		Captured:  pieceTypeName(vm.Captured),
		EnPassant: vm.EnPassant,
	}
	if vm.IsPromotion() {
		jm.Promotion = pieceTypeName(vm.Promotion)
	}
	return jm
}

// pieceLists returns the squares of every piece, grouped by colour and kind.
// Kinds with no pieces are left out.
func pieceLists(reg *chess.Registry) map[string]map[string][]string {
	result := make(map[string]map[string][]string, 2)
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kinds := make(map[string][]string)
		for kind := chess.Pawn; kind < chess.NumPieceKinds; kind++ {
			squares := reg.SquaresOf(colour, kind)
			if len(squares) == 0 {
				continue
			}
			names := make([]string, len(squares))
			for i, sq := range squares {
				names[i] = sq.String()
			}
			slices.Sort(names)
			kinds[pieceTypeName(kind)] = names
		}
		result[colorName(colour)] = kinds
	}
	return result
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the piece type as a string, "" for no piece.
func pieceTypeName(k chess.PieceKind) string {
	if k == chess.NoPiece {
		return ""
	}
	return strings.ToLower(k.String())
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WritePosition buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(snap *Snapshot) error {
	jp := SnapshotToJSON(snap)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(jp)
	}

	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Positions: jw.positions})

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
