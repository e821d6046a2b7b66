package engine

import (
	"math"
	"math/rand"

	"github.com/dylhunn/dragontoothmg"
)

// Infinity bounds every score the evaluators can produce; alpha and beta
// start at -Infinity and +Infinity.
const Infinity int32 = math.MaxInt32

// Side designates the color a MiniMax engine plays and evaluates for.
// The zero value is deliberately invalid.
type Side uint8

const (
	SideWhite Side = iota + 1
	SideBlack
)

func (s Side) valid() bool {
	return s == SideWhite || s == SideBlack
}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	}
	return "Invalid"
}

// MiniMax selects moves by a depth-limited minimax walk of the game tree
// with alpha-beta pruning, MVV-LVA move ordering and a transposition table.
//
// The search is synchronous and purely depth-first: there is no iterative
// deepening, quiescence or cancellation, so a search at depth four or more
// on a midgame position simply runs until it finishes.
type MiniMax struct {
	baseEngine
	side     Side
	depth    int
	bestMove dragontoothmg.Move
	rng      *rand.Rand

	// AlphaBetaPruning may be disabled to search the full tree; pruning
	// never changes the chosen move, only the number of nodes visited.
	AlphaBetaPruning bool
	// MoveOrdering toggles the MVV-LVA heuristic; without it the move list
	// is searched in a random order.
	MoveOrdering bool
	// Alpha and Beta are the root search bounds.
	Alpha int32
	Beta  int32

	transpositionTable *TranspositionTable
}

// NewMiniMax builds an engine playing the given side searching to the given
// depth. The random source drives the transposition table's Zobrist randoms
// and every ordering tie-break, so a seeded source makes the engine
// deterministic.
func NewMiniMax(side Side, depth int, rng *rand.Rand) (*MiniMax, error) {
	if !side.valid() {
		return nil, ErrInvalidSide
	}
	if depth < 1 {
		return nil, ErrDepthTooShallow
	}
	return &MiniMax{
		baseEngine:         newBaseEngine("MiniMax"),
		side:               side,
		depth:              depth,
		rng:                rng,
		AlphaBetaPruning:   true,
		MoveOrdering:       true,
		Alpha:              -Infinity,
		Beta:               Infinity,
		transpositionTable: NewTranspositionTable(rng),
	}, nil
}

// Side returns the color this engine selects moves for.
func (m *MiniMax) Side() Side { return m.side }

// Depth returns the current search depth in plies.
func (m *MiniMax) Depth() int { return m.depth }

// SetDepth changes the search depth. Values below one ply are rejected and
// leave the previous depth in place.
func (m *MiniMax) SetDepth(depth int) error {
	if depth < 1 {
		return ErrDepthTooShallow
	}
	m.depth = depth
	return nil
}

// TranspositionTable exposes the engine's memo table, mainly so callers can
// observe its growth. The table lives as long as the engine and is reused
// across moves; it is never pruned.
func (m *MiniMax) TranspositionTable() *TranspositionTable {
	return m.transpositionTable
}

// BestMove returns the move recorded by the last search, or NullMove when
// the last search found none.
func (m *MiniMax) BestMove() dragontoothmg.Move { return m.bestMove }

// minimax recursively evaluates every legal line below the board to the
// given remaining depth and returns the score of the best one for the side
// on turn at this ply.
//
// The board is mutated in place and restored before every return path:
// each applied move's unapply closure runs exactly once, in LIFO order,
// including when a beta cutoff abandons the rest of the move list.
func (m *MiniMax) minimax(b *dragontoothmg.Board, maximizing bool, depth int, alpha, beta int32) int32 {
	if depth == 0 || IsTerminal(b) {
		return m.evaluator.Evaluate(b)
	}

	var moves []dragontoothmg.Move
	if m.MoveOrdering {
		moves = MVVLVA(b, b.GenerateLegalMoves(), m.values, m.rng)
	} else {
		moves = shuffledMoves(b.GenerateLegalMoves(), m.rng)
	}

	if maximizing {
		maxVal := -Infinity
		for _, move := range moves {
			unapply := b.Apply(move)
			// Reuse the memoized evaluation of this occupancy if one
			// exists; otherwise search the branch and remember it.
			val, found := m.transpositionTable.Lookup(b)
			if !found {
				val = m.minimax(b, false, depth-1, alpha, beta)
				m.transpositionTable.Store(b, val)
			}
			unapply()

			if val > maxVal {
				maxVal = val
				// Record only the root move of the engine's own color.
				if m.side == SideWhite && depth == m.depth {
					m.bestMove = move
				}
			}
			if m.AlphaBetaPruning {
				if val > alpha {
					alpha = val
				}
				if beta <= alpha {
					break
				}
			}
		}
		return maxVal
	}

	minVal := Infinity
	for _, move := range moves {
		unapply := b.Apply(move)
		val, found := m.transpositionTable.Lookup(b)
		if !found {
			val = m.minimax(b, true, depth-1, alpha, beta)
			m.transpositionTable.Store(b, val)
		}
		unapply()

		if val < minVal {
			minVal = val
			if m.side == SideBlack && depth == m.depth {
				m.bestMove = move
			}
		}
		if m.AlphaBetaPruning {
			if val < beta {
				beta = val
			}
			if beta <= alpha {
				break
			}
		}
	}
	return minVal
}

// Evaluate runs the search from the board at the configured depth and
// records the best root move for this engine's side. The appended material
// evaluation is progress bookkeeping only; it never feeds back into the
// search.
func (m *MiniMax) Evaluate(b *dragontoothmg.Board) error {
	if !m.side.valid() {
		return ErrInvalidSide
	}
	m.ResetMoveVariables()
	m.bestMove = NullMove
	m.minimax(b, m.side == SideWhite, m.depth, m.Alpha, m.Beta)
	m.recordEvaluation(b)
	return nil
}

// Move returns the best move found by the search, or NullMove when the
// position offers none, which the caller must treat as resignation.
func (m *MiniMax) Move(b *dragontoothmg.Board) (dragontoothmg.Move, error) {
	if err := m.Evaluate(b); err != nil {
		return NullMove, err
	}
	return m.bestMove, nil
}
