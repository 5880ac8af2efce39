// Package parser decodes Standard Algebraic Notation into move descriptors.
package parser

import (
	"strings"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/errors"
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return chess.IsFileLetter(c)
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return chess.IsRankDigit(c)
}

// isDigit returns true for any decimal digit, including ranks that do not exist.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLower returns true for any lowercase ASCII letter, including files that do not exist.
func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// isAnnotation returns true for the move assessment glyphs ! and ?.
func isAnnotation(c byte) bool {
	return c == '!' || c == '?'
}

// maxAnnotationLen is the longest assessment suffix ("!!", "??", "!?", "?!").
const maxAnnotationLen = 2

// castlingForms maps the accepted castling spellings to their class.
var castlingForms = map[string]chess.MoveClass{
	"O-O":   chess.KingsideCastle,
	"0-0":   chess.KingsideCastle,
	"O-O-O": chess.QueensideCastle,
	"0-0-0": chess.QueensideCastle,
}

// ParseSAN parses a SAN move string and returns the decoded move.
//
// Accepted forms are castling (O-O, 0-0, O-O-O, 0-0-0) and
// [KQRBN]([a-h1-8]|[a-h][1-8])?x?[a-h][1-8](=[QRBN])? with an optional trailing + or #
// and an optional assessment such as "!" or "??", both of which are ignored. A pawn move to the first or last rank without "=X" gets
// a Queen promotion marked PromotionImplicit.
func ParseSAN(text string) (*chess.Move, error) {
	moveString := strings.TrimSpace(text)
	if moveString == "" {
		return nil, malformed(text, 0)
	}

	body := moveString
	for n := 0; n < maxAnnotationLen && body != "" && isAnnotation(body[len(body)-1]); n++ {
		body = body[:len(body)-1]
	}
	if body == "" {
		return nil, malformed(text, 1)
	}

	// Trailing check or mate marker
	if isCheck(body[len(body)-1]) {
		body = body[:len(body)-1]
	}
	if body == "" {
		return nil, malformed(text, 1)
	}

	if class, ok := castlingForms[body]; ok {
		return &chess.Move{
			Text:  moveString,
			Class: class,
			Piece: chess.King,
			To:    chess.NoSquare,
		}, nil
	}

	move := &chess.Move{
		Text:  moveString,
		Class: chess.NormalMove,
		Piece: chess.Pawn,
	}

	pos := 0
	if kind := chess.KindFromLetter(body[0]); kind != chess.NoPiece {
		move.Piece = kind
		pos++
	}

	// Promotion suffix
	end := len(body)
	if end-pos >= 2 && body[end-2] == '=' {
		promoted := chess.KindFromLetter(body[end-1])
		if !promoted.IsPromotable() {
			return nil, malformed(text, end)
		}
		move.Promotion = promoted
		end -= 2
	}

	// Target square: a file letter followed by a rank. Letters and digits
	// that merely look like a square are reported as off the board.
	digits := end
	for digits > pos && isDigit(body[digits-1]) {
		digits--
	}
	if digits == end || digits-1 < pos || !isLower(body[digits-1]) {
		return nil, malformed(text, end)
	}
	fileChar := body[digits-1]
	rankText := body[digits:end]
	if !isCol(fileChar) || len(rankText) != 1 || !isRank(rankText[0]) {
		return nil, &errors.ParseError{Err: errors.ErrTargetOffBoard, Input: text, Column: digits}
	}
	move.To = chess.Sq(int(fileChar-chess.FileBase), int(rankText[0]-chess.RankBase))
	targetStart := digits - 1

	// Whatever sits between the piece letter and the target: "", "x", "D",
	// "Dx", or a full origin square with or without "x".
	prefix := body[pos:targetStart]
	if strings.HasSuffix(prefix, "x") {
		move.Capture = true
		prefix = prefix[:len(prefix)-1]
	}
	switch {
	case prefix == "":
	case len(prefix) == 1 && (isCol(prefix[0]) || isRank(prefix[0])):
		move.Disambiguator = prefix[0]
	case len(prefix) == 2 && move.Piece != chess.Pawn && isCol(prefix[0]) && isRank(prefix[1]):
		move.Disambiguator = prefix[0]
		move.DisambiguatorRank = prefix[1]
	default:
		return nil, malformed(text, pos+1)
	}

	if move.Piece == chess.Pawn && move.Promotion == chess.NoPiece &&
		(move.To.Rank == 0 || move.To.Rank == chess.BoardSize-1) {
		move.Promotion = chess.Queen
		move.PromotionImplicit = true
	}

	return move, nil
}

// malformed builds the ParseError for text that does not follow the grammar.
func malformed(text string, column int) error {
	return &errors.ParseError{Err: errors.ErrMalformedMove, Input: text, Column: column}
}
