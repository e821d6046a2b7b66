package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// Evaluator scores a board state in centipawns. Positive scores favor White
// by convention; zero is neutral. Implementations keep a history of every
// evaluation keyed by FEN, for introspection and testing only.
type Evaluator interface {
	Name() string
	Evaluate(b *dragontoothmg.Board) int32
	Evaluations() map[string]int32
	ResetEvaluations()
}

// StandardEvaluator tabulates the value of all pieces on both sides and
// reports the signed difference.
type StandardEvaluator struct {
	values      PieceValues
	evaluations map[string]int32
}

// NewStandardEvaluator builds a material-only evaluator with the
// conventional piece values.
func NewStandardEvaluator() *StandardEvaluator {
	return &StandardEvaluator{
		values:      ConventionalPieceValues,
		evaluations: make(map[string]int32),
	}
}

func (e *StandardEvaluator) Name() string { return "Standard" }

func (e *StandardEvaluator) Evaluate(b *dragontoothmg.Board) int32 {
	var val int32
	for square := uint8(0); square < 64; square++ {
		piece, white, occupied := PieceAt(b, square)
		if !occupied {
			continue
		}
		pieceValue := e.values[piece]
		if pieceValue == 0 {
			panic("engine: no value for piece " + pieceName(piece))
		}
		if !white {
			pieceValue = -pieceValue
		}
		val += pieceValue
	}
	e.evaluations[b.ToFen()] = val
	return val
}

func (e *StandardEvaluator) Evaluations() map[string]int32 { return e.evaluations }

func (e *StandardEvaluator) ResetEvaluations() {
	e.evaluations = make(map[string]int32)
}

// PiecePlacementEvaluator adds a square-dependent bonus from the
// piece-square tables on top of raw material. The tables are defined from
// White's perspective and point-reflected for Black.
type PiecePlacementEvaluator struct {
	values      PieceValues
	evaluations map[string]int32
}

// NewPiecePlacementEvaluator builds a material-plus-placement evaluator.
func NewPiecePlacementEvaluator() *PiecePlacementEvaluator {
	return &PiecePlacementEvaluator{
		values:      ConventionalPieceValues,
		evaluations: make(map[string]int32),
	}
}

func (e *PiecePlacementEvaluator) Name() string { return "Piece Placement" }

func (e *PiecePlacementEvaluator) Evaluate(b *dragontoothmg.Board) int32 {
	var val int32
	for square := uint8(0); square < 64; square++ {
		piece, white, occupied := PieceAt(b, square)
		if !occupied {
			continue
		}
		pieceValue := e.values[piece]
		if pieceValue == 0 {
			panic("engine: no value for piece " + pieceName(piece))
		}
		pieceValue += placementBonus(piece, square, white)
		if !white {
			pieceValue = -pieceValue
		}
		val += pieceValue
	}
	e.evaluations[b.ToFen()] = val
	return val
}

func (e *PiecePlacementEvaluator) Evaluations() map[string]int32 { return e.evaluations }

func (e *PiecePlacementEvaluator) ResetEvaluations() {
	e.evaluations = make(map[string]int32)
}
