package engine

import (
	"math/rand"

	"github.com/dylhunn/dragontoothmg"
)

// TranspositionTable memoizes search evaluations keyed by Zobrist
// fingerprint. Two move sequences that reach the same occupancy share one
// entry, so a branch already evaluated elsewhere in the tree is never
// recomputed.
//
// This is an always-overwrite table with no capacity bound and no
// collision disambiguation beyond the 64-bit fingerprint itself: a
// colliding occupancy silently reads the other position's value. Both are
// accepted characteristics, not guarded error paths.
type TranspositionTable struct {
	hashTable *ZobristTable
	values    map[uint64]int32
}

// NewTranspositionTable generates the table's own Zobrist randoms from the
// given source and starts with an empty memo map.
func NewTranspositionTable(rng *rand.Rand) *TranspositionTable {
	return &TranspositionTable{
		hashTable: NewZobristTable(rng),
		values:    make(map[uint64]int32),
	}
}

// HashPosition fingerprints a board against this table's randoms.
func (tt *TranspositionTable) HashPosition(b *dragontoothmg.Board) uint64 {
	return ZobristHash(b, tt.hashTable)
}

// Lookup returns the stored evaluation for the board's fingerprint, if any.
func (tt *TranspositionTable) Lookup(b *dragontoothmg.Board) (score int32, found bool) {
	score, found = tt.values[tt.HashPosition(b)]
	return score, found
}

// Store inserts or overwrites the evaluation for the board's fingerprint.
func (tt *TranspositionTable) Store(b *dragontoothmg.Board, score int32) {
	tt.values[tt.HashPosition(b)] = score
}

// Len reports how many distinct fingerprints have been stored.
func (tt *TranspositionTable) Len() int {
	return len(tt.values)
}
