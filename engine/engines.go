package engine

import (
	"math/rand"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// NullMove is the sentinel returned by an engine with no move to play. It
// signals resignation or the end of the game; callers must check for it
// before applying the returned move to a board.
var NullMove dragontoothmg.Move

// Engine is the capability shared by every move-selection strategy. Each
// engine evaluates a board state and provides a move for the side whose
// turn it is; the two reset hooks reinitialize per-move and per-game
// bookkeeping.
type Engine interface {
	Name() string
	Evaluate(b *dragontoothmg.Board) error
	Move(b *dragontoothmg.Board) (dragontoothmg.Move, error)
	ResetMoveVariables()
	ResetGameVariables()
	MaterialDifference() []int32
}

// baseEngine carries the bookkeeping every strategy shares: a name, a value
// schedule, an evaluator, the cached legal moves of the last evaluation and
// the per-game trace of board evaluations.
type baseEngine struct {
	name               string
	values             PieceValues
	evaluator          Evaluator
	legalMoves         []dragontoothmg.Move
	materialDifference []int32
}

func newBaseEngine(name string) baseEngine {
	return baseEngine{
		name:      name,
		values:    ConventionalPieceValues,
		evaluator: NewStandardEvaluator(),
	}
}

func (e *baseEngine) Name() string { return e.name }

func (e *baseEngine) MaterialDifference() []int32 { return e.materialDifference }

func (e *baseEngine) ResetMoveVariables() {
	e.legalMoves = nil
}

func (e *baseEngine) ResetGameVariables() {
	e.materialDifference = nil
	e.evaluator.ResetEvaluations()
}

// recordEvaluation appends the evaluator's view of the board to the
// per-game material trace.
func (e *baseEngine) recordEvaluation(b *dragontoothmg.Board) {
	e.materialDifference = append(e.materialDifference, e.evaluator.Evaluate(b))
}

// findMoveByUCI looks a UCI string up in a move list.
func findMoveByUCI(moves []dragontoothmg.Move, uci string) (dragontoothmg.Move, bool) {
	for _, move := range moves {
		if move.String() == uci {
			return move, true
		}
	}
	return NullMove, false
}

// Random chooses a uniformly random legal move.
type Random struct {
	baseEngine
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{baseEngine: newBaseEngine("Random"), rng: rng}
}

func (e *Random) Evaluate(b *dragontoothmg.Board) error {
	e.ResetMoveVariables()
	e.legalMoves = b.GenerateLegalMoves()
	e.recordEvaluation(b)
	return nil
}

func (e *Random) Move(b *dragontoothmg.Board) (dragontoothmg.Move, error) {
	if err := e.Evaluate(b); err != nil {
		return NullMove, err
	}
	if len(e.legalMoves) == 0 {
		return NullMove, nil
	}
	return e.legalMoves[e.rng.Intn(len(e.legalMoves))], nil
}

// PrioritizePawnMoves plays a random pawn move when one exists and falls
// back to any random legal move otherwise.
type PrioritizePawnMoves struct {
	baseEngine
	rng *rand.Rand
}

func NewPrioritizePawnMoves(rng *rand.Rand) *PrioritizePawnMoves {
	return &PrioritizePawnMoves{
		baseEngine: newBaseEngine("Prioritize Pawn Moves"),
		rng:        rng,
	}
}

func (e *PrioritizePawnMoves) Evaluate(b *dragontoothmg.Board) error {
	e.ResetMoveVariables()
	allMoves := b.GenerateLegalMoves()
	own, _ := sideBitboards(b)
	for _, move := range allMoves {
		if piece, ok := GetPieceTypeAtPosition(move.From(), own); ok && piece == dragontoothmg.Pawn {
			e.legalMoves = append(e.legalMoves, move)
		}
	}
	if len(e.legalMoves) == 0 {
		e.legalMoves = allMoves
	}
	e.recordEvaluation(b)
	return nil
}

func (e *PrioritizePawnMoves) Move(b *dragontoothmg.Board) (dragontoothmg.Move, error) {
	if err := e.Evaluate(b); err != nil {
		return NullMove, err
	}
	if len(e.legalMoves) == 0 {
		return NullMove, nil
	}
	return e.legalMoves[e.rng.Intn(len(e.legalMoves))], nil
}

// RandomCapture plays the first capture it finds, or a random move when no
// capture is available.
type RandomCapture struct {
	baseEngine
	rng *rand.Rand
}

func NewRandomCapture(rng *rand.Rand) *RandomCapture {
	return &RandomCapture{baseEngine: newBaseEngine("Random Capture"), rng: rng}
}

func (e *RandomCapture) Evaluate(b *dragontoothmg.Board) error {
	e.ResetMoveVariables()
	e.legalMoves = b.GenerateLegalMoves()
	e.recordEvaluation(b)
	return nil
}

func (e *RandomCapture) Move(b *dragontoothmg.Board) (dragontoothmg.Move, error) {
	if err := e.Evaluate(b); err != nil {
		return NullMove, err
	}
	if len(e.legalMoves) == 0 {
		return NullMove, nil
	}
	for _, move := range e.legalMoves {
		if dragontoothmg.IsCapture(move, b) {
			return move, nil
		}
	}
	return e.legalMoves[e.rng.Intn(len(e.legalMoves))], nil
}

// CaptureHighestValue captures the most valuable reachable piece, or plays
// a random move when no capture is available.
type CaptureHighestValue struct {
	baseEngine
	rng *rand.Rand
}

func NewCaptureHighestValue(rng *rand.Rand) *CaptureHighestValue {
	return &CaptureHighestValue{
		baseEngine: newBaseEngine("Capture Highest Value"),
		rng:        rng,
	}
}

func (e *CaptureHighestValue) Evaluate(b *dragontoothmg.Board) error {
	e.ResetMoveVariables()
	e.legalMoves = b.GenerateLegalMoves()
	e.recordEvaluation(b)
	return nil
}

func (e *CaptureHighestValue) Move(b *dragontoothmg.Board) (dragontoothmg.Move, error) {
	if err := e.Evaluate(b); err != nil {
		return NullMove, err
	}
	if len(e.legalMoves) == 0 {
		return NullMove, nil
	}

	_, opponent := sideBitboards(b)
	var highestValue int32
	bestMove := NullMove
	haveCapture := false
	for _, move := range e.legalMoves {
		if !dragontoothmg.IsCapture(move, b) {
			continue
		}
		victim, ok := GetPieceTypeAtPosition(move.To(), opponent)
		if !ok {
			victim = dragontoothmg.Pawn // en passant
		}
		if value := e.values[victim]; !haveCapture || value > highestValue {
			highestValue = value
			bestMove = move
			haveCapture = true
		}
	}
	if haveCapture {
		return bestMove, nil
	}
	return e.legalMoves[e.rng.Intn(len(e.legalMoves))], nil
}

// AvoidCapture plays the first non-capture it finds, or a random move when
// every legal move captures.
type AvoidCapture struct {
	baseEngine
	rng *rand.Rand
}

func NewAvoidCapture(rng *rand.Rand) *AvoidCapture {
	return &AvoidCapture{baseEngine: newBaseEngine("Avoid Capture"), rng: rng}
}

func (e *AvoidCapture) Evaluate(b *dragontoothmg.Board) error {
	e.ResetMoveVariables()
	e.legalMoves = b.GenerateLegalMoves()
	e.recordEvaluation(b)
	return nil
}

func (e *AvoidCapture) Move(b *dragontoothmg.Board) (dragontoothmg.Move, error) {
	if err := e.Evaluate(b); err != nil {
		return NullMove, err
	}
	if len(e.legalMoves) == 0 {
		return NullMove, nil
	}
	for _, move := range e.legalMoves {
		if !dragontoothmg.IsCapture(move, b) {
			return move, nil
		}
	}
	return e.legalMoves[e.rng.Intn(len(e.legalMoves))], nil
}

// scholarsMateSequence is the scripted white attack on f7.
var scholarsMateSequence = [4]string{"e2e4", "f1c4", "d1h5", "h5f7"}

// ScholarsMate plays the scholar's mate script from the standard starting
// position and resigns the moment the script is blocked. The script is
// defined for White, so the engine forfeits on the black side.
type ScholarsMate struct {
	baseEngine
}

func NewScholarsMate() *ScholarsMate {
	return &ScholarsMate{baseEngine: newBaseEngine("Scholar's Mate")}
}

func (e *ScholarsMate) Evaluate(b *dragontoothmg.Board) error {
	e.ResetMoveVariables()
	e.legalMoves = b.GenerateLegalMoves()
	e.recordEvaluation(b)
	return nil
}

func (e *ScholarsMate) Move(b *dragontoothmg.Board) (dragontoothmg.Move, error) {
	// The script assumes the standard setup; resign on anything else.
	if b.Fullmoveno == 1 && !isStandardSetup(b) {
		return NullMove, nil
	}

	if err := e.Evaluate(b); err != nil {
		return NullMove, err
	}

	// Past the scripted sequence, resign.
	if b.Fullmoveno < 1 || int(b.Fullmoveno) > len(scholarsMateSequence) {
		return NullMove, nil
	}

	move, ok := findMoveByUCI(e.legalMoves, scholarsMateSequence[b.Fullmoveno-1])
	if !ok {
		return NullMove, nil
	}
	return move, nil
}

// isStandardSetup compares piece placement and side to move with the
// standard starting position.
func isStandardSetup(b *dragontoothmg.Board) bool {
	placement := strings.Fields(b.ToFen())[0]
	standard := strings.Fields(dragontoothmg.Startpos)[0]
	return placement == standard && b.Wtomove
}
