package engine

import (
	"math/rand"

	"github.com/dylhunn/dragontoothmg"
)

// pieceIdentities is the number of distinct (piece type, color) pairs.
const pieceIdentities = 12

// ZobristTable holds one 64-bit random number per (rank, file, piece
// identity) triple. A table's values are fixed for its lifetime, so every
// hash computed against it is stable.
type ZobristTable [8][8][pieceIdentities]uint64

// NewZobristTable fills a table from the given random source. Callers that
// need reproducible fingerprints seed the source explicitly.
func NewZobristTable(rng *rand.Rand) *ZobristTable {
	var table ZobristTable
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			for piece := 0; piece < pieceIdentities; piece++ {
				table[rank][file][piece] = rng.Uint64()
			}
		}
	}
	return &table
}

// pieceIndex maps a (piece type, color) pair to 0-11: white pieces first in
// type order, then black.
func pieceIndex(piece dragontoothmg.Piece, white bool) int {
	idx := int(piece) - 1
	if !white {
		idx += 6
	}
	return idx
}

// ZobristHash fingerprints the piece occupancy of a board by XOR-combining
// the table entries of every occupied square.
//
// Only occupancy is hashed: two positions that differ in side to move,
// castling rights or en passant square produce the same fingerprint. The
// transposition table treats such positions as identical.
func ZobristHash(b *dragontoothmg.Board, table *ZobristTable) uint64 {
	var hash uint64
	for square := uint8(0); square < 64; square++ {
		piece, white, occupied := PieceAt(b, square)
		if !occupied {
			continue
		}
		rank := square / 8
		file := square % 8
		hash ^= table[rank][file][pieceIndex(piece, white)]
	}
	return hash
}
