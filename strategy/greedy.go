// Package strategy provides concrete decision-makers implementing the
// engine's Strategy contract.
package strategy

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/sirpthatch/tangosim/engine"
	"github.com/sirpthatch/tangosim/game"
)

// ErrNoLegalPlacement means a strategy found no tile, rotation and
// available position combination that satisfies the board. The game run
// aborts when this happens on a turn that requires a placement.
var ErrNoLegalPlacement = errors.New("no legal placement")

// Greedy always takes the highest-scoring action it can see one step
// ahead: placements are ranked by ScorePotentialMove, relocations (in
// advanced mode) by the score delta of a trial application on a board
// copy. Ties break toward the earliest hand tile, smallest rotation and
// smallest position, so two Greedy players produce a reproducible game.
type Greedy struct {
	player int
	turn   int
}

func NewGreedy(player int) *Greedy {
	return &Greedy{player: player}
}

func (g *Greedy) DecidePlacement(state *game.GameState, hand []game.Tile) (game.Tile, game.Position, error) {
	g.turn++

	best := 0
	found := false
	var bestTile game.Tile
	var bestPos game.Position

	available := state.AvailablePositions()
	for _, tile := range hand {
		seen := make(map[[6]bool]struct{}, 6)
		for rot := 0; rot < 6; rot++ {
			rotated := tile.Rotate(rot)
			if _, dup := seen[rotated.Pattern]; dup {
				continue
			}
			seen[rotated.Pattern] = struct{}{}
			for _, pos := range available {
				score, ok := state.ScorePotentialMove(rotated, pos)
				if !ok {
					continue
				}
				if !found || score > best {
					best, bestTile, bestPos, found = score, rotated, pos, true
				}
			}
		}
	}
	if !found {
		return game.Tile{}, game.Position{}, ErrNoLegalPlacement
	}
	log.Debug().Int("player", g.player).Int("turn", g.turn).
		Int("score", best).Stringer("pos", bestPos).Msg("greedy placement")
	return bestTile, bestPos, nil
}

// DecideMove weighs the best relocation of an own tile against the best
// placement and relocates only when it scores strictly higher.
func (g *Greedy) DecideMove(state *game.GameState, hand []game.Tile, player int) (*engine.Move, error) {
	placementBest := -1
	if len(hand) > 0 {
		if score, ok := g.bestPlacementScore(state, hand); ok {
			placementBest = score
		}
	}

	current := state.Scores()
	origins := make([]game.Position, 0)
	for pos, tile := range state.Tiles() {
		if tile.Color == player {
			origins = append(origins, pos)
		}
	}
	game.SortPositions(origins)

	var bestMove *engine.Move
	bestGain := 0
	for _, origin := range origins {
		for _, mv := range engine.LegalMoves(state, origin) {
			if state.WouldMoveDisconnectBoard(mv.Origin, mv.Destination) {
				continue
			}
			gain, ok := trialMoveGain(state, mv, player, current[player])
			if !ok {
				continue
			}
			if bestMove == nil || gain > bestGain {
				m := mv
				bestMove, bestGain = &m, gain
			}
		}
	}

	if bestMove != nil && bestGain > placementBest && bestGain > 0 {
		g.turn++
		log.Debug().Int("player", g.player).Int("turn", g.turn).
			Int("gain", bestGain).Stringer("from", bestMove.Origin).
			Stringer("to", bestMove.Destination).Msg("greedy move")
		return bestMove, nil
	}
	return nil, nil
}

func (g *Greedy) ChoosePop(state *game.GameState, hand []game.Tile, candidates []game.Position) (game.Position, error) {
	best := candidates[0]
	bestDelta := state.ScorePop(best, g.player)
	for _, c := range candidates[1:] {
		if delta := state.ScorePop(c, g.player); delta > bestDelta {
			best, bestDelta = c, delta
		}
	}
	return best, nil
}

func (g *Greedy) bestPlacementScore(state *game.GameState, hand []game.Tile) (int, bool) {
	best := 0
	found := false
	for _, tile := range hand {
		for rot := 0; rot < 6; rot++ {
			rotated := tile.Rotate(rot)
			for _, pos := range state.AvailablePositions() {
				if score, ok := state.ScorePotentialMove(rotated, pos); ok {
					if !found || score > best {
						best, found = score, true
					}
				}
			}
		}
	}
	return best, found
}

// trialMoveGain applies mv on a board copy and returns the player's
// score delta. Pops triggered by the trial are not resolved; a move
// that merely sets up pops is valued by its direct adjacency change.
func trialMoveGain(state *game.GameState, mv engine.Move, player, baseline int) (int, bool) {
	trial := state.Copy()
	if _, err := trial.RemoveTile(mv.Origin); err != nil {
		return 0, false
	}
	if _, err := trial.PlaceTileForMove(mv.Tile, mv.Destination); err != nil {
		return 0, false
	}
	return trial.Scores()[player] - baseline, true
}
