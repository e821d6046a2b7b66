package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

const (
	missingBlackQueenFEN = "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	// White is down a knight, Black is down a rook.
	unequalTradeFEN = "1nbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/R1BQKBNR w KQkq - 0 1"
)

func TestStandardEvaluatorStartingPosition(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	evaluator := NewStandardEvaluator()

	if val := evaluator.Evaluate(&board); val != 0 {
		t.Fatalf("expected balanced material to evaluate to 0, got %d", val)
	}
}

func TestStandardEvaluatorMissingQueen(t *testing.T) {
	board := dragontoothmg.ParseFen(missingBlackQueenFEN)
	evaluator := NewStandardEvaluator()

	if val := evaluator.Evaluate(&board); val != 1000 {
		t.Fatalf("expected a queen advantage of 1000, got %d", val)
	}
}

func TestStandardEvaluatorUnequalTrade(t *testing.T) {
	board := dragontoothmg.ParseFen(unequalTradeFEN)
	evaluator := NewStandardEvaluator()

	// A rook for a knight leaves White up 525 - 350.
	if val := evaluator.Evaluate(&board); val != 175 {
		t.Fatalf("expected a 175 centipawn edge, got %d", val)
	}
}

func TestStandardEvaluatorKeepsHistory(t *testing.T) {
	start := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	ahead := dragontoothmg.ParseFen(missingBlackQueenFEN)
	evaluator := NewStandardEvaluator()

	evaluator.Evaluate(&start)
	evaluator.Evaluate(&ahead)

	history := evaluator.Evaluations()
	if len(history) != 2 {
		t.Fatalf("expected 2 recorded evaluations, got %d", len(history))
	}
	if val, ok := history[start.ToFen()]; !ok || val != 0 {
		t.Fatalf("expected starting position recorded as 0, got %d (ok=%v)", val, ok)
	}

	evaluator.ResetEvaluations()
	if len(evaluator.Evaluations()) != 0 {
		t.Fatalf("expected reset to clear the history")
	}
}

func TestPiecePlacementEvaluatorStartingPosition(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	evaluator := NewPiecePlacementEvaluator()

	// The placement tables are point-reflected for Black, so the mirrored
	// starting armies cancel exactly.
	if val := evaluator.Evaluate(&board); val != 0 {
		t.Fatalf("expected symmetric placement to evaluate to 0, got %d", val)
	}
}

func TestPiecePlacementEvaluatorPointReflection(t *testing.T) {
	// Both kings and both knights sit on point-reflected squares.
	board := dragontoothmg.ParseFen("3k2n1/8/8/8/8/8/8/1N2K3 w - - 0 1")
	evaluator := NewPiecePlacementEvaluator()

	if val := evaluator.Evaluate(&board); val != 0 {
		t.Fatalf("expected reflected placement to cancel, got %d", val)
	}
}

func TestPiecePlacementEvaluatorPrefersCenterKnight(t *testing.T) {
	rim := dragontoothmg.ParseFen("3k4/8/8/8/8/8/8/1N2K3 w - - 0 1")
	center := dragontoothmg.ParseFen("3k4/8/8/8/3N4/8/8/4K3 w - - 0 1")
	evaluator := NewPiecePlacementEvaluator()

	rimVal := evaluator.Evaluate(&rim)
	centerVal := evaluator.Evaluate(&center)
	if centerVal <= rimVal {
		t.Fatalf("expected a centralized knight to score higher: center %d <= rim %d", centerVal, rimVal)
	}
}

func TestEvaluatorsAgreeOnMaterialDirection(t *testing.T) {
	board := dragontoothmg.ParseFen(missingBlackQueenFEN)

	standard := NewStandardEvaluator().Evaluate(&board)
	placement := NewPiecePlacementEvaluator().Evaluate(&board)
	if standard <= 0 || placement <= 0 {
		t.Fatalf("expected both evaluators to favor White: standard %d, placement %d", standard, placement)
	}
}
