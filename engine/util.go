package engine

import (
	"math/rand"

	"github.com/dylhunn/dragontoothmg"

	"golang.org/x/exp/slices"
)

// GetPieceTypeAtPosition reports which piece type, if any, the given
// bitboard set has on a square.
func GetPieceTypeAtPosition(position uint8, bitboards *dragontoothmg.Bitboards) (pieceType dragontoothmg.Piece, occupied bool) {
	if bitboards.Pawns&(1<<position) > 0 {
		return dragontoothmg.Pawn, true
	} else if bitboards.Knights&(1<<position) > 0 {
		return dragontoothmg.Knight, true
	} else if bitboards.Bishops&(1<<position) > 0 {
		return dragontoothmg.Bishop, true
	} else if bitboards.Rooks&(1<<position) > 0 {
		return dragontoothmg.Rook, true
	} else if bitboards.Queens&(1<<position) > 0 {
		return dragontoothmg.Queen, true
	} else if bitboards.Kings&(1<<position) > 0 {
		return dragontoothmg.King, true
	}
	return 0, false
}

// PieceAt resolves the piece type and color on a square of the full board.
func PieceAt(b *dragontoothmg.Board, square uint8) (pieceType dragontoothmg.Piece, white bool, occupied bool) {
	if piece, ok := GetPieceTypeAtPosition(square, &b.White); ok {
		return piece, true, true
	}
	if piece, ok := GetPieceTypeAtPosition(square, &b.Black); ok {
		return piece, false, true
	}
	return 0, false, false
}

// sideBitboards returns the mover's and the opponent's piece sets.
func sideBitboards(b *dragontoothmg.Board) (own, opponent *dragontoothmg.Bitboards) {
	if b.Wtomove {
		return &b.White, &b.Black
	}
	return &b.Black, &b.White
}

// shuffledMoves returns a shuffled copy of the move list; the input order is
// never meaningful, so ties must not be broken by generation order.
func shuffledMoves(moves []dragontoothmg.Move, rng *rand.Rand) []dragontoothmg.Move {
	out := slices.Clone(moves)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// SquareIndex converts an algebraic coordinate like "e4" to a 0-63 square
// index in little-endian rank-file mapping.
func SquareIndex(coord string) uint8 {
	if len(coord) != 2 {
		panic("engine: invalid coordinate " + coord)
	}
	file := coord[0] - 'a'
	rank := coord[1] - '1'
	return rank*8 + file
}
