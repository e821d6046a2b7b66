package engine

import (
	"math/rand"

	"github.com/dylhunn/dragontoothmg"

	"golang.org/x/exp/slices"
)

// Most Valuable Victim - Least Valuable Aggressor; captures are scored by
// the value gained if the exchange were free, so that the tightest
// alpha-beta bounds are established as early as possible.

type scoredCapture struct {
	move      dragontoothmg.Move
	valueDiff int32
}

// MVVLVA orders a legal move list by the MVV-LVA capture heuristic.
//
// When at least one capture exists, only the captures are returned, sorted
// by descending victim-minus-aggressor value difference; moves with the
// same difference keep their discovery order. When no capture exists the
// full list is returned shuffled, so that the search never prefers a move
// purely because of generation order. The board is never mutated.
func MVVLVA(b *dragontoothmg.Board, moves []dragontoothmg.Move, values PieceValues, rng *rand.Rand) []dragontoothmg.Move {
	own, opponent := sideBitboards(b)

	captures := make([]scoredCapture, 0, len(moves))
	for _, move := range moves {
		if !dragontoothmg.IsCapture(move, b) {
			continue
		}
		aggressor, ok := GetPieceTypeAtPosition(move.From(), own)
		if !ok {
			panic("engine: capture with no aggressor piece at " + move.String())
		}
		victim, ok := GetPieceTypeAtPosition(move.To(), opponent)
		if !ok {
			// En passant: the victim pawn is not on the target square.
			victim = dragontoothmg.Pawn
		}
		captures = append(captures, scoredCapture{
			move:      move,
			valueDiff: values[victim] - values[aggressor],
		})
	}

	if len(captures) == 0 {
		return shuffledMoves(moves, rng)
	}

	slices.SortStableFunc(captures, func(a, b scoredCapture) bool {
		return a.valueDiff > b.valueDiff
	})

	ordered := make([]dragontoothmg.Move, len(captures))
	for i, capture := range captures {
		ordered[i] = capture.move
	}
	return ordered
}
