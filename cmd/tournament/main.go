package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"chessmate/engine"
	"chessmate/playground"
)

// A matchup is "white:black", e.g. "minimax:random". Each matchup runs in
// its own goroutine with its own engines, boards and random source; the
// searches themselves stay single-threaded.
func main() {
	matchupsFlag := flag.String("matchups", "random:random,capture-highest:random",
		"comma-separated white:black engine pairs")
	gamesFlag := flag.Int("games", 10, "games per matchup")
	depthFlag := flag.Int("depth", 2, "search depth for minimax engines")
	seedFlag := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	matchups := strings.Split(*matchupsFlag, ",")

	var mu sync.Mutex
	summaries := make(map[string]map[playground.Result]int)

	var group errgroup.Group
	for i, matchup := range matchups {
		i, matchup := i, matchup
		group.Go(func() error {
			names := strings.SplitN(matchup, ":", 2)
			if len(names) != 2 {
				return fmt.Errorf("malformed matchup %q", matchup)
			}

			rng := rand.New(rand.NewSource(seed + int64(i)))
			white, err := playground.EngineByName(names[0], engine.SideWhite, *depthFlag, rng)
			if err != nil {
				return err
			}
			black, err := playground.EngineByName(names[1], engine.SideBlack, *depthFlag, rng)
			if err != nil {
				return err
			}

			pg := playground.New(white, black, rng, log.With().Str("matchup", matchup).Logger())
			if err := pg.PlayMultipleGames(*gamesFlag); err != nil {
				return err
			}

			mu.Lock()
			summaries[matchup] = pg.ResultCounts()
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	ordered := make([]string, 0, len(summaries))
	for matchup := range summaries {
		ordered = append(ordered, matchup)
	}
	sort.Strings(ordered)

	for _, matchup := range ordered {
		fmt.Printf("%s\n", matchup)
		for result, count := range summaries[matchup] {
			fmt.Printf("  %-28s %d\n", result, count)
		}
	}
}
