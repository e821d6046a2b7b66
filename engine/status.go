package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Halfmove count at which the seventy-five-move rule ends the game.
const seventyFiveMoveHalfmoves = 150

// IsTerminal reports whether the game cannot continue from this position:
// no legal moves (checkmate or stalemate), a seventy-five-move-rule draw,
// or a dead position with insufficient mating material.
//
// Repetition draws need the game history, which a single position does not
// carry; the playground tracks those while driving a game.
func IsTerminal(b *dragontoothmg.Board) bool {
	if len(b.GenerateLegalMoves()) == 0 {
		return true
	}
	if b.Halfmoveclock >= seventyFiveMoveHalfmoves {
		return true
	}
	return InsufficientMaterial(b)
}

// IsCheckmate reports whether the side to move has no legal moves while in
// check.
func IsCheckmate(b *dragontoothmg.Board) bool {
	return len(b.GenerateLegalMoves()) == 0 && b.OurKingInCheck()
}

// IsStalemate reports whether the side to move has no legal moves without
// being in check.
func IsStalemate(b *dragontoothmg.Board) bool {
	return len(b.GenerateLegalMoves()) == 0 && !b.OurKingInCheck()
}

// InsufficientMaterial reports dead positions where no mate can be forced:
// bare kings, or kings with at most one minor piece on the whole board.
func InsufficientMaterial(b *dragontoothmg.Board) bool {
	heavy := b.White.Pawns | b.White.Rooks | b.White.Queens |
		b.Black.Pawns | b.Black.Rooks | b.Black.Queens
	if heavy != 0 {
		return false
	}
	minors := b.White.Knights | b.White.Bishops | b.Black.Knights | b.Black.Bishops
	return bits.OnesCount64(minors) <= 1
}
