package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"chessmate/engine"
	"chessmate/playground"
)

func main() {
	whiteFlag := flag.String("white", "random", "white engine ("+strings.Join(playground.EngineNames, ", ")+")")
	blackFlag := flag.String("black", "random", "black engine")
	gamesFlag := flag.Int("games", 10, "number of games to play")
	depthFlag := flag.Int("depth", 2, "search depth for minimax engines")
	fenFlag := flag.String("fen", "", "starting FEN (empty = standard setup)")
	seedFlag := flag.Int64("seed", 0, "random seed (0 = time-based)")
	verboseFlag := flag.Bool("v", false, "log every game")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verboseFlag {
		log = log.Level(zerolog.DebugLevel)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	white, err := playground.EngineByName(*whiteFlag, engine.SideWhite, *depthFlag, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("bad white engine")
	}
	black, err := playground.EngineByName(*blackFlag, engine.SideBlack, *depthFlag, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("bad black engine")
	}

	pg := playground.New(white, black, rng, log)
	if *fenFlag != "" {
		if err := pg.SetFEN(*fenFlag); err != nil {
			log.Fatal().Err(err).Msg("bad FEN")
		}
	}

	start := time.Now()
	if err := pg.PlayMultipleGames(*gamesFlag); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	log.Info().
		Int("games", *gamesFlag).
		Dur("elapsed", time.Since(start)).
		Msg("simulation finished")

	for result, count := range pg.ResultCounts() {
		fmt.Printf("%-28s %d\n", result, count)
	}
}
