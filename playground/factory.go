package playground

import (
	"fmt"
	"math/rand"

	"chessmate/engine"
)

// EngineNames lists the strategy names understood by EngineByName.
var EngineNames = []string{
	"random",
	"pawns",
	"random-capture",
	"capture-highest",
	"avoid-capture",
	"scholars-mate",
	"minimax",
}

// EngineByName builds a named strategy. The side and depth arguments only
// matter for minimax; every other strategy ignores them.
func EngineByName(name string, side engine.Side, depth int, rng *rand.Rand) (engine.Engine, error) {
	switch name {
	case "random":
		return engine.NewRandom(rng), nil
	case "pawns":
		return engine.NewPrioritizePawnMoves(rng), nil
	case "random-capture":
		return engine.NewRandomCapture(rng), nil
	case "capture-highest":
		return engine.NewCaptureHighestValue(rng), nil
	case "avoid-capture":
		return engine.NewAvoidCapture(rng), nil
	case "scholars-mate":
		return engine.NewScholarsMate(), nil
	case "minimax":
		return engine.NewMiniMax(side, depth, rng)
	}
	return nil, fmt.Errorf("playground: unknown engine %q", name)
}
