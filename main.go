// Command tangosim plays, simulates and replays games of Tango, a
// two-player hexagonal tile-laying game.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sirpthatch/tangosim/engine"
	"github.com/sirpthatch/tangosim/recorder"
	"github.com/sirpthatch/tangosim/renderer"
	"github.com/sirpthatch/tangosim/simulator"
	"github.com/sirpthatch/tangosim/simulator/metrics"
	"github.com/sirpthatch/tangosim/strategy"
)

func main() {
	var (
		cmd        = flag.String("cmd", "play", "play, simulate or replay")
		mode       = flag.String("mode", "simple", "game mode: simple or advanced")
		games      = flag.Int("games", 1000, "number of games to simulate")
		parallel   = flag.Int("parallel", 1, "games run concurrently during simulation")
		outDir     = flag.String("out", "output", "directory for SVG renders")
		recordPath = flag.String("record", "", "game record path: written by play, read by replay")
		jsonOut    = flag.String("json", "", "write simulation results JSON to this path")
		csvOut     = flag.Bool("csv", false, "dump per-game simulation records as CSV")
		seed       = flag.Uint64("seed", 0, "base seed for the random strategy (0 = clock)")
		coords     = flag.Bool("coords", false, "label rendered tiles with coordinates")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	gameMode := engine.Mode(*mode)

	var err error
	switch *cmd {
	case "play":
		err = runPlay(gameMode, *outDir, *recordPath, *coords)
	case "simulate":
		err = runSimulate(gameMode, *games, *parallel, *seed, *jsonOut, *csvOut)
	case "replay":
		err = runReplay(*recordPath, *outDir, *coords)
	default:
		err = fmt.Errorf("unknown command %q", *cmd)
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", *cmd).Msg("run failed")
	}
}

// runPlay plays two greedy strategies against each other, rendering the
// board after every round and optionally saving the game record.
func runPlay(mode engine.Mode, outDir, recordPath string, coords bool) error {
	g, err := engine.New(mode, []engine.Strategy{
		strategy.NewGreedy(0),
		strategy.NewGreedy(1),
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	opts := renderer.Options{ShowAvailable: true, ShowCoordinates: coords}

	saveRound := func(round int) error {
		path := filepath.Join(outDir, fmt.Sprintf("round%d.svg", round))
		if err := renderer.SaveSVG(g.State(), path, opts); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("saved render")
		return nil
	}
	if err := saveRound(0); err != nil {
		return err
	}

	for {
		done, err := g.Step()
		if err != nil {
			return err
		}
		if done {
			break
		}
		if err := saveRound(g.Rounds()); err != nil {
			return err
		}
	}

	scores := g.State().Scores()
	fmt.Printf("Game complete after %d rounds\n", g.Rounds())
	fmt.Printf("Final scores: Player 1: %d, Player 2: %d\n", scores[0], scores[1])
	switch {
	case scores[0] > scores[1]:
		fmt.Println("Winner: Player 1")
	case scores[1] > scores[0]:
		fmt.Println("Winner: Player 2")
	default:
		fmt.Println("Result: Tie")
	}

	if recordPath != "" {
		record := recorder.FromGame(g, scores, g.Rounds())
		if err := record.Save(recordPath); err != nil {
			return err
		}
		log.Info().Str("path", recordPath).Msg("saved game record")
	}
	return nil
}

// runSimulate plays a greedy strategy against a random one across a
// batch of independent games.
func runSimulate(mode engine.Mode, games, parallel int, seed uint64, jsonOut string, csvOut bool) error {
	var gameSeed atomic.Uint64
	factories := []simulator.Factory{
		func(p int) engine.Strategy { return strategy.NewGreedy(p) },
		func(p int) engine.Strategy {
			if seed == 0 {
				return strategy.NewRandom(p, 0)
			}
			return strategy.NewRandom(p, seed+gameSeed.Add(1))
		},
	}

	sim, err := simulator.New(factories,
		simulator.WithMode(mode),
		simulator.WithGames(games),
		simulator.WithParallelism(parallel),
		simulator.WithKeepRaw(),
		simulator.WithProgress(func(done, total int) {
			if done%100 == 0 || done == total {
				fmt.Fprintf(os.Stderr, "\rProgress: %d/%d games...", done, total)
			}
		}),
	)
	if err != nil {
		return err
	}

	results := sim.Run()
	fmt.Fprintln(os.Stderr)
	simulator.PrintResults(os.Stdout, results, []string{"Greedy", "Random"})

	if jsonOut != "" {
		if err := results.SaveJSON(jsonOut); err != nil {
			return err
		}
		log.Info().Str("path", jsonOut).Msg("saved results")
	}
	if csvOut {
		dir, err := results.WriteCSV("greedy_vs_random", []metrics.StrategyConfig{
			{Player: 0, Name: "Greedy"},
			{Player: 1, Name: "Random", Seed: seed},
		})
		if err != nil {
			return err
		}
		log.Info().Str("dir", dir).Msg("saved CSV records")
	}
	return nil
}

// runReplay rebuilds a recorded game's final board and renders it.
func runReplay(recordPath, outDir string, coords bool) error {
	if recordPath == "" {
		return fmt.Errorf("replay requires -record")
	}
	record, err := recorder.Load(recordPath)
	if err != nil {
		return err
	}
	state, err := recorder.Replay(record)
	if err != nil {
		return err
	}

	scores := state.Scores()
	fmt.Printf("Replayed %d actions (%s mode, %d rounds recorded)\n",
		len(record.Actions), record.GameMode, record.Rounds)
	fmt.Printf("Replayed scores: %v (recorded: %v, winner %d)\n",
		scores, record.FinalScores, record.Winner)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outDir, "replay.svg")
	if err := renderer.SaveSVG(state, path, renderer.Options{ShowAvailable: true, ShowCoordinates: coords}); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("saved render")
	return nil
}
