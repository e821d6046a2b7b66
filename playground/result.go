package playground

import (
	"github.com/dylhunn/dragontoothmg"

	"chessmate/engine"
)

// Result describes the condition that ended a game.
type Result string

const (
	ResultWhiteMate            Result = "White win by mate"
	ResultBlackMate            Result = "Black win by mate"
	ResultStalemate            Result = "Stalemate"
	ResultInsufficientMaterial Result = "Insufficient material"
	ResultSeventyfiveMoves     Result = "Seventyfive moves"
	ResultFivefoldRepetition   Result = "Fivefold repetition"
	ResultResignation          Result = "Game over by resignation"
	ResultUndetermined         Result = "Undetermined"
)

// EvaluateEndingBoard classifies the condition that ended a game. The two
// history-dependent endings, resignation and fivefold repetition, cannot be
// read off the final position and are passed in by the game driver.
func EvaluateEndingBoard(b *dragontoothmg.Board, resigned, fivefold bool) Result {
	switch {
	case resigned:
		return ResultResignation
	case fivefold:
		return ResultFivefoldRepetition
	case engine.IsCheckmate(b):
		// The side to move is the side that got mated.
		if b.Wtomove {
			return ResultBlackMate
		}
		return ResultWhiteMate
	case engine.IsStalemate(b):
		return ResultStalemate
	case engine.InsufficientMaterial(b):
		return ResultInsufficientMaterial
	case b.Halfmoveclock >= 150:
		return ResultSeventyfiveMoves
	}
	// None of the defined ending states found; this happens only when a
	// caller classifies a position that is not actually terminal.
	return ResultUndetermined
}
