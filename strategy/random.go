package strategy

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/sirpthatch/tangosim/engine"
	"github.com/sirpthatch/tangosim/game"
)

// moveAttemptOdds is the 1-in-N chance Random tries to relocate a board
// tile instead of placing, in advanced mode.
const moveAttemptOdds = 4

// Random picks uniformly among legal placements. In advanced mode it
// occasionally relocates one of its tiles instead. Seedable for
// reproducible games.
type Random struct {
	player int
	turn   int
	rng    *rand.Rand
}

// NewRandom creates a random strategy. A zero seed derives one from the
// clock.
func NewRandom(player int, seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{player: player, rng: rand.New(rand.NewSource(seed))}
}

type placement struct {
	tile game.Tile
	pos  game.Position
}

func (r *Random) DecidePlacement(state *game.GameState, hand []game.Tile) (game.Tile, game.Position, error) {
	r.turn++

	var legal []placement
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
				if _, ok := state.ScorePotentialMove(rotated, pos); ok {
					legal = append(legal, placement{rotated, pos})
				}
			}
		}
	}
	if len(legal) == 0 {
		return game.Tile{}, game.Position{}, ErrNoLegalPlacement
	}
	pick := legal[r.rng.Intn(len(legal))]
	return pick.tile, pick.pos, nil
}

func (r *Random) DecideMove(state *game.GameState, hand []game.Tile, player int) (*engine.Move, error) {
	if len(hand) > 0 && r.rng.Intn(moveAttemptOdds) != 0 {
		return nil, nil
	}

	var origins []game.Position
	for pos, tile := range state.Tiles() {
		if tile.Color == player {
			origins = append(origins, pos)
		}
	}
	if len(origins) == 0 {
		return nil, nil
	}
	game.SortPositions(origins)

	var moves []engine.Move
	for _, origin := range origins {
		for _, mv := range engine.LegalMoves(state, origin) {
			if !state.WouldMoveDisconnectBoard(mv.Origin, mv.Destination) {
				moves = append(moves, mv)
			}
		}
	}
	if len(moves) == 0 {
		return nil, nil
	}
	r.turn++
	mv := moves[r.rng.Intn(len(moves))]
	return &mv, nil
}

func (r *Random) ChoosePop(state *game.GameState, hand []game.Tile, candidates []game.Position) (game.Position, error) {
	return candidates[r.rng.Intn(len(candidates))], nil
}
