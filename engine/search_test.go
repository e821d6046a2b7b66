package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// White to move: the black queen on e5 hangs, but it is defended by the
// d6 pawn. A one-ply search grabs it; a two-ply search takes the knight
// on h3 instead.
const queenTrapFEN = "6k1/8/3p4/4q2Q/8/7n/8/7K w - - 0 1"

// The same tactic with colors reversed and Black to move.
const queenTrapMirroredFEN = "7k/8/7N/8/4Q2q/3P4/8/6K1 b - - 0 1"

func newTestMiniMax(t *testing.T, side Side, depth int) *MiniMax {
	t.Helper()
	m, err := NewMiniMax(side, depth, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewMiniMax: %v", err)
	}
	return m
}

func TestNewMiniMaxValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	if _, err := NewMiniMax(Side(0), 2, rng); !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide for the zero side, got %v", err)
	}
	if _, err := NewMiniMax(Side(9), 2, rng); !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide for an unknown side, got %v", err)
	}
	if _, err := NewMiniMax(SideWhite, 0, rng); !errors.Is(err, ErrDepthTooShallow) {
		t.Fatalf("expected ErrDepthTooShallow for depth 0, got %v", err)
	}

	m, err := NewMiniMax(SideBlack, 3, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Side() != SideBlack || m.Depth() != 3 {
		t.Fatalf("engine misconfigured: side %v depth %d", m.Side(), m.Depth())
	}
	if !m.AlphaBetaPruning || !m.MoveOrdering {
		t.Fatalf("pruning and ordering should default to enabled")
	}
	if m.Alpha != -Infinity || m.Beta != Infinity {
		t.Fatalf("expected open root bounds, got alpha %d beta %d", m.Alpha, m.Beta)
	}
}

func TestSetDepth(t *testing.T) {
	m := newTestMiniMax(t, SideWhite, 2)

	if err := m.SetDepth(0); !errors.Is(err, ErrDepthTooShallow) {
		t.Fatalf("expected ErrDepthTooShallow, got %v", err)
	}
	if err := m.SetDepth(-3); !errors.Is(err, ErrDepthTooShallow) {
		t.Fatalf("expected ErrDepthTooShallow, got %v", err)
	}
	if m.Depth() != 2 {
		t.Fatalf("rejected depth must leave the old depth in place, got %d", m.Depth())
	}

	if err := m.SetDepth(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Depth() != 4 {
		t.Fatalf("expected depth 4, got %d", m.Depth())
	}
}

func TestMiniMaxDepthOneGrabsTheQueen(t *testing.T) {
	board := dragontoothmg.ParseFen(queenTrapFEN)
	m := newTestMiniMax(t, SideWhite, 1)

	move, err := m.Move(&board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move.String() != "h5e5" {
		t.Fatalf("expected the greedy queen capture h5e5, got %s", move.String())
	}
}

func TestMiniMaxDepthTwoSeesTheDefender(t *testing.T) {
	for _, tc := range []struct {
		name    string
		pruning bool
	}{
		{"pruning", true},
		{"full tree", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			board := dragontoothmg.ParseFen(queenTrapFEN)
			m := newTestMiniMax(t, SideWhite, 2)
			m.AlphaBetaPruning = tc.pruning

			move, err := m.Move(&board)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if move.String() != "h5h3" {
				t.Fatalf("expected the safe knight capture h5h3, got %s", move.String())
			}
		})
	}
}

func TestMiniMaxDepthTwoWithoutOrdering(t *testing.T) {
	board := dragontoothmg.ParseFen(queenTrapFEN)
	m := newTestMiniMax(t, SideWhite, 2)
	m.MoveOrdering = false

	move, err := m.Move(&board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move.String() != "h5h3" {
		t.Fatalf("expected h5h3 regardless of move ordering, got %s", move.String())
	}
}

func TestMiniMaxPlaysItsOwnColor(t *testing.T) {
	board := dragontoothmg.ParseFen(queenTrapMirroredFEN)
	m := newTestMiniMax(t, SideBlack, 1)

	move, err := m.Move(&board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move.String() != "h4e4" {
		t.Fatalf("expected Black to grab the white queen with h4e4, got %s", move.String())
	}
	if m.BestMove() != move {
		t.Fatalf("BestMove should report the last chosen move")
	}
}

func TestMiniMaxResignsWithoutMoves(t *testing.T) {
	board := dragontoothmg.ParseFen(stalemateFEN)
	m := newTestMiniMax(t, SideBlack, 2)

	move, err := m.Move(&board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move != NullMove {
		t.Fatalf("expected NullMove in a dead position, got %s", move.String())
	}
}

func TestMiniMaxRejectsInvalidSideAtSearchTime(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	m := newTestMiniMax(t, SideWhite, 1)
	m.side = Side(7)

	if err := m.Evaluate(&board); !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide, got %v", err)
	}
}

func TestMiniMaxFillsTranspositionTable(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	m := newTestMiniMax(t, SideWhite, 2)

	if m.TranspositionTable().Len() != 0 {
		t.Fatalf("expected an empty table before the first search")
	}
	if _, err := m.Move(&board); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TranspositionTable().Len() == 0 {
		t.Fatalf("expected the search to memoize positions")
	}
}

func TestMiniMaxRestoresBoard(t *testing.T) {
	board := dragontoothmg.ParseFen(queenTrapFEN)
	fenBefore := board.ToFen()
	m := newTestMiniMax(t, SideWhite, 2)

	if _, err := m.Move(&board); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ToFen() != fenBefore {
		t.Fatalf("search mutated the board: %s -> %s", fenBefore, board.ToFen())
	}
}

func TestMiniMaxRecordsMaterialTrace(t *testing.T) {
	board := dragontoothmg.ParseFen(queenTrapFEN)
	m := newTestMiniMax(t, SideWhite, 1)

	if _, err := m.Move(&board); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trace := m.MaterialDifference()
	if len(trace) != 1 {
		t.Fatalf("expected one evaluation per move request, got %d", len(trace))
	}
	// White queen against queen, pawn and knight.
	if trace[0] != -450 {
		t.Fatalf("expected a -450 material deficit, got %d", trace[0])
	}
}

func TestSideString(t *testing.T) {
	if SideWhite.String() != "White" || SideBlack.String() != "Black" {
		t.Fatalf("unexpected side names: %s, %s", SideWhite, SideBlack)
	}
	if Side(0).String() != "Invalid" {
		t.Fatalf("expected the zero side to be invalid")
	}
}
