// Package playground simulates games between engines and collects the
// statistics needed to compare them: results, game lengths and the material
// balance over the course of each game.
package playground

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"chessmate/engine"
)

// fivefoldRepetitions is how many times one position must occur before the
// game is drawn by repetition.
const fivefoldRepetitions = 5

// positionKey identifies a game state for repetition counting. The engine's
// fingerprint covers occupancy only, so the side to move is tracked
// alongside it.
type positionKey struct {
	hash    uint64
	wtomove bool
}

// GameRecord stores everything retained about one finished game.
type GameRecord struct {
	ID        uuid.UUID
	Moves     []string
	MoveCount int
	Result    Result
}

// MaterialTrace pairs both engines' per-move board evaluations for one game.
type MaterialTrace struct {
	White []int32
	Black []int32
}

// Playground plays a white engine against a black engine for one or many
// games, accumulating records across all of them.
type Playground struct {
	White engine.Engine
	Black engine.Engine

	fen       string
	hashTable *engine.ZobristTable
	log       zerolog.Logger

	Games                  []GameRecord
	AllResults             []Result
	AllMoveCounts          []int
	AllMaterialDifferences []MaterialTrace
}

// New pairs two engines over the standard starting position. The random
// source seeds the repetition-tracking hash table.
func New(white, black engine.Engine, rng *rand.Rand, log zerolog.Logger) *Playground {
	return &Playground{
		White:     white,
		Black:     black,
		fen:       dragontoothmg.Startpos,
		hashTable: engine.NewZobristTable(rng),
		log:       log,
	}
}

// FEN returns the starting position used for every game.
func (p *Playground) FEN() string { return p.fen }

// SetFEN changes the starting position for subsequent games.
func (p *Playground) SetFEN(fen string) error {
	if err := validateFEN(fen); err != nil {
		return err
	}
	p.fen = fen
	return nil
}

// validateFEN rejects strings that are not plausibly FEN before they reach
// the move generator.
func validateFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return fmt.Errorf("playground: empty FEN")
	}
	if rows := strings.Split(fields[0], "/"); len(rows) != 8 {
		return fmt.Errorf("playground: expected 8 rows in FEN position %q", fen)
	}
	return nil
}

// PlayGame plays a single game to its end and appends its record to the
// playground's accumulated statistics.
func (p *Playground) PlayGame() (GameRecord, error) {
	board := dragontoothmg.ParseFen(p.fen)
	p.White.ResetGameVariables()
	p.Black.ResetGameVariables()

	record := GameRecord{ID: uuid.New()}
	seen := make(map[positionKey]int)
	p.countPosition(seen, &board)

	resigned := false
	fivefold := false

game:
	for !engine.IsTerminal(&board) {
		for _, mover := range []engine.Engine{p.White, p.Black} {
			move, err := mover.Move(&board)
			if err != nil {
				return record, fmt.Errorf("playground: %s move: %w", mover.Name(), err)
			}
			if move == engine.NullMove {
				resigned = true
				break game
			}
			record.Moves = append(record.Moves, move.String())
			board.Apply(move)
			if p.countPosition(seen, &board) >= fivefoldRepetitions {
				fivefold = true
				break game
			}
			if engine.IsTerminal(&board) {
				break game
			}
		}
	}

	record.MoveCount = int(board.Fullmoveno) - 1
	record.Result = EvaluateEndingBoard(&board, resigned, fivefold)

	p.Games = append(p.Games, record)
	p.AllResults = append(p.AllResults, record.Result)
	p.AllMoveCounts = append(p.AllMoveCounts, record.MoveCount)
	p.AllMaterialDifferences = append(p.AllMaterialDifferences, MaterialTrace{
		White: p.White.MaterialDifference(),
		Black: p.Black.MaterialDifference(),
	})

	p.log.Debug().
		Stringer("game", record.ID).
		Str("result", string(record.Result)).
		Int("moves", record.MoveCount).
		Msg("game finished")

	return record, nil
}

// PlayMultipleGames plays n games back to back, resetting the accumulated
// results first.
func (p *Playground) PlayMultipleGames(n int) error {
	p.Games = nil
	p.AllResults = nil
	p.AllMoveCounts = nil
	p.AllMaterialDifferences = nil

	for i := 1; i <= n; i++ {
		p.log.Info().
			Int("game", i).
			Int("of", n).
			Str("white", p.White.Name()).
			Str("black", p.Black.Name()).
			Msg("playing game")
		if _, err := p.PlayGame(); err != nil {
			return fmt.Errorf("playground: game %d: %w", i, err)
		}
	}
	return nil
}

// ResultCounts tallies the accumulated game results.
func (p *Playground) ResultCounts() map[Result]int {
	counts := make(map[Result]int)
	for _, result := range p.AllResults {
		counts[result]++
	}
	return counts
}

// countPosition bumps and returns the occurrence count of the board's
// current state.
func (p *Playground) countPosition(seen map[positionKey]int, b *dragontoothmg.Board) int {
	key := positionKey{
		hash:    engine.ZobristHash(b, p.hashTable),
		wtomove: b.Wtomove,
	}
	seen[key]++
	return seen[key]
}
