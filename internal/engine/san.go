package engine

import (
	"strings"

	"github.com/lgbarn/sanchess-go/internal/chess"
)

// FormatSAN renders a verified move in standard algebraic notation from the
// position it is played in. The origin is disambiguated only as far as the
// other legal moves require, and a check or mate marker is appended.
func FormatSAN(pos *chess.Position, vm *chess.VerifiedMove) string {
	var sb strings.Builder

	switch vm.Class {
	case chess.KingsideCastle:
		sb.WriteString("O-O")
	case chess.QueensideCastle:
		sb.WriteString("O-O-O")
	default:
		capture := vm.Captured != chess.NoPiece
		if vm.Piece == chess.Pawn {
			if capture {
				sb.WriteByte(vm.From.FileLetter())
			}
		} else {
			sb.WriteByte(vm.Piece.Letter())
			sb.WriteString(disambiguation(pos, vm))
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(vm.Target.String())
		if vm.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(vm.Promotion.Letter())
		}
	}

	next := pos.Clone()
	if err := ApplyMove(next, vm); err == nil {
		switch Classify(next) {
		case Checkmate:
			sb.WriteByte('#')
		case Check:
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell vm
// apart from other legal moves of the same piece kind to the same target.
func disambiguation(pos *chess.Position, vm *chess.VerifiedMove) string {
	var rivals []chess.Square
	for _, other := range LegalMoves(pos) {
		if other.Piece == vm.Piece && other.Target == vm.Target && other.From != vm.From && !other.IsCastle() {
			rivals = append(rivals, other.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.File == vm.From.File
		sameRank = sameRank || sq.Rank == vm.From.Rank
	}
	switch {
	case !sameFile:
		return string(vm.From.FileLetter())
	case !sameRank:
		return string(vm.From.RankDigit())
	}
	return vm.From.String()
}
