package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"

	"chessmate/engine"
)

func main() {
	fenFlag := flag.String("fen", dragontoothmg.Startpos, "FEN to search")
	depthFlag := flag.Int("depth", 3, "search depth in plies")
	seedFlag := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	board := dragontoothmg.ParseFen(*fenFlag)
	side := engine.SideWhite
	if !board.Wtomove {
		side = engine.SideBlack
	}

	minimax, err := engine.NewMiniMax(side, *depthFlag, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("bad engine configuration")
	}

	start := time.Now()
	move, err := minimax.Move(&board)
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}
	elapsed := time.Since(start)

	if move == engine.NullMove {
		log.Info().Dur("elapsed", elapsed).Msg("no legal move: resignation")
		fmt.Println("(none)")
		return
	}

	log.Info().
		Stringer("side", side).
		Int("depth", *depthFlag).
		Int("transpositions", minimax.TranspositionTable().Len()).
		Dur("elapsed", elapsed).
		Msg("search finished")
	fmt.Println(move.String())
}
