// Package simulator runs batches of independent games and aggregates
// their outcomes into statistics.
package simulator

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sirpthatch/tangosim/engine"
	"github.com/sirpthatch/tangosim/game"
)

// Factory creates a fresh Strategy for the given player index. Every
// game gets its own instances, so strategies are free to keep per-game
// state.
type Factory func(player int) engine.Strategy

// GameResult is the outcome of a single game. Winner is the player
// index, or -1 for a tie. A non-nil Err marks a failed run: a strategy
// made an illegal decision and the game aborted.
type GameResult struct {
	Scores           []int     `json:"scores"`
	Winner           int       `json:"winner"`
	ScoreGap         int       `json:"score_gap"`
	Rounds           int       `json:"rounds"`
	NeighborAffinity []float64 `json:"neighbor_affinity"`
	Err              error     `json:"-"`
}

// Results aggregates a batch of games. Failed runs count toward
// Failures and are excluded from the distributions.
type Results struct {
	RunID                         string              `json:"run_id"`
	NumGames                      int                 `json:"num_games"`
	Failures                      int                 `json:"failures"`
	Wins                          []int               `json:"wins"`
	Ties                          int                 `json:"ties"`
	WinPercentages                []float64           `json:"win_percentages"`
	ScoreDistributions            []DistributionStats `json:"score_distributions"`
	ScoreGapDistribution          DistributionStats   `json:"score_gap_distribution"`
	RoundsDistribution            DistributionStats   `json:"rounds_distribution"`
	NeighborAffinityDistributions []DistributionStats `json:"neighbor_affinity_distributions"`
	Raw                           []GameResult        `json:"-"`
}

// ToJSON renders the aggregate as indented JSON.
func (r Results) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}
	return data, nil
}

// SaveJSON writes the aggregate to a JSON file.
func (r Results) SaveJSON(path string) error {
	data, err := r.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// Simulator runs many independent games between the same line-up of
// strategy factories. Each game owns its board exclusively, so games
// run in parallel without sharing state.
type Simulator struct {
	factories   []Factory
	mode        engine.Mode
	numGames    int
	parallelism int
	keepRaw     bool
	progress    func(done, total int)
}

type Option func(*Simulator)

// WithMode selects the game variant. Defaults to simple.
func WithMode(mode engine.Mode) Option {
	return func(s *Simulator) {
		s.mode = mode
	}
}

// WithGames sets the batch size. Defaults to 1000.
func WithGames(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.numGames = n
		}
	}
}

// WithParallelism sets how many games run concurrently. Defaults to 1.
func WithParallelism(goroutines int) Option {
	return func(s *Simulator) {
		if goroutines > 0 {
			s.parallelism = goroutines
		}
	}
}

// WithKeepRaw retains the per-game results on the aggregate.
func WithKeepRaw() Option {
	return func(s *Simulator) {
		s.keepRaw = true
	}
}

// WithProgress installs a completion callback. With parallelism above
// one it may be invoked from multiple goroutines.
func WithProgress(callback func(done, total int)) Option {
	return func(s *Simulator) {
		s.progress = callback
	}
}

// New builds a simulator for the given strategy line-up.
func New(factories []Factory, options ...Option) (*Simulator, error) {
	if len(factories) < 2 {
		return nil, fmt.Errorf("need at least two strategy factories, got %d", len(factories))
	}
	s := &Simulator{
		factories:   factories,
		mode:        engine.ModeSimple,
		numGames:    1000,
		parallelism: 1,
	}
	for _, option := range options {
		option(s)
	}
	if s.mode != engine.ModeSimple && s.mode != engine.ModeAdvanced {
		return nil, fmt.Errorf("%w: %q", engine.ErrUnknownMode, s.mode)
	}
	return s, nil
}

// Run plays the whole batch and aggregates the outcomes.
func (s *Simulator) Run() Results {
	runID := uuid.NewString()
	log.Info().Str("run", runID).Int("games", s.numGames).
		Str("mode", string(s.mode)).Int("parallelism", s.parallelism).
		Msg("starting simulation")

	results := make([]GameResult, s.numGames)
	jobs := make(chan int)
	var done atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < s.parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.runGame()
				if s.progress != nil {
					s.progress(int(done.Add(1)), s.numGames)
				}
			}
		}()
	}
	for i := 0; i < s.numGames; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	aggregated := s.aggregate(runID, results)
	log.Info().Str("run", runID).Int("failures", aggregated.Failures).
		Msg("simulation complete")
	return aggregated
}

func (s *Simulator) runGame() GameResult {
	players := make([]engine.Strategy, len(s.factories))
	for i, factory := range s.factories {
		players[i] = factory(i)
	}
	g, err := engine.New(s.mode, players)
	if err != nil {
		return GameResult{Err: err}
	}
	state, _, rounds, err := g.Play()
	if err != nil {
		log.Warn().Err(err).Msg("game run aborted")
		return GameResult{Err: err}
	}

	scores := state.Scores()
	winner, gap := winnerAndGap(scores)
	return GameResult{
		Scores:           scores,
		Winner:           winner,
		ScoreGap:         gap,
		Rounds:           rounds,
		NeighborAffinity: NeighborAffinity(state, len(players)),
	}
}

func winnerAndGap(scores []int) (int, int) {
	best := scores[0]
	winner := 0
	tied := false
	for i, s := range scores[1:] {
		switch {
		case s > best:
			best, winner, tied = s, i+1, false
		case s == best:
			tied = true
		}
	}
	if tied {
		return -1, 0
	}
	runnerUp := 0
	haveRunnerUp := false
	for i, s := range scores {
		if i == winner {
			continue
		}
		if !haveRunnerUp || s > runnerUp {
			runnerUp, haveRunnerUp = s, true
		}
	}
	if !haveRunnerUp {
		return winner, 0
	}
	return winner, best - runnerUp
}

func (s *Simulator) aggregate(runID string, results []GameResult) Results {
	numPlayers := len(s.factories)

	wins := make([]int, numPlayers)
	ties := 0
	failures := 0
	var ok []GameResult
	for _, r := range results {
		if r.Err != nil {
			failures++
			continue
		}
		ok = append(ok, r)
		if r.Winner == -1 {
			ties++
		} else {
			wins[r.Winner]++
		}
	}

	winPercentages := make([]float64, numPlayers)
	if len(ok) > 0 {
		for i, w := range wins {
			winPercentages[i] = float64(w) / float64(len(ok)) * 100
		}
	}

	scoreDists := make([]DistributionStats, numPlayers)
	affinityDists := make([]DistributionStats, numPlayers)
	for player := 0; player < numPlayers; player++ {
		scores := make([]float64, 0, len(ok))
		affinities := make([]float64, 0, len(ok))
		for _, r := range ok {
			scores = append(scores, float64(r.Scores[player]))
			affinities = append(affinities, r.NeighborAffinity[player])
		}
		scoreDists[player] = StatsFromValues(scores)
		affinityDists[player] = StatsFromValues(affinities)
	}

	var gaps, rounds []float64
	for _, r := range ok {
		rounds = append(rounds, float64(r.Rounds))
		if r.Winner != -1 {
			gaps = append(gaps, float64(r.ScoreGap))
		}
	}

	aggregated := Results{
		RunID:                         runID,
		NumGames:                      len(results),
		Failures:                      failures,
		Wins:                          wins,
		Ties:                          ties,
		WinPercentages:                winPercentages,
		ScoreDistributions:            scoreDists,
		ScoreGapDistribution:          StatsFromValues(gaps),
		RoundsDistribution:            StatsFromValues(rounds),
		NeighborAffinityDistributions: affinityDists,
	}
	if s.keepRaw {
		aggregated.Raw = results
	}
	return aggregated
}

// NeighborAffinity computes the clustering metric per player: the ratio
// of same-color neighbors to total neighbors across all tiles a player
// owns. Higher means more clustered placement.
func NeighborAffinity(state *game.GameState, numPlayers int) []float64 {
	same := make([]int, numPlayers)
	total := make([]int, numPlayers)
	for pos, tile := range state.Tiles() {
		if tile.Color < 0 || tile.Color >= numPlayers {
			continue
		}
		for _, n := range pos.Neighbors() {
			other, ok := state.TileAt(n)
			if !ok {
				continue
			}
			total[tile.Color]++
			if other.Color == tile.Color {
				same[tile.Color]++
			}
		}
	}
	affinities := make([]float64, numPlayers)
	for player := 0; player < numPlayers; player++ {
		if total[player] > 0 {
			affinities[player] = float64(same[player]) / float64(total[player])
		}
	}
	return affinities
}
