package recorder

import (
	"fmt"

	"github.com/sirpthatch/tangosim/game"
)

// Replay applies the recorded actions to a fresh board and returns the
// final state. Pop choices made by strategies during the live game are
// not part of the wire format, so each cascade is resolved by popping
// the smallest surrounded position in (q, r) order; a live game whose
// strategy popped in a different order may have reached a different
// board.
func Replay(r GameRecord) (*game.GameState, error) {
	numPlayers := len(r.InitialTiles)
	if numPlayers == 0 {
		numPlayers = len(r.FinalScores)
	}
	state := game.NewGameState(numPlayers)

	for i, a := range r.Actions {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}

		var surrounded []game.Position
		var err error
		switch a.Type {
		case game.ActionPlace:
			surrounded, err = state.PlaceTile(a.Tile, a.Destination)
		case game.ActionMove:
			if _, err = state.RemoveTile(*a.Origin); err == nil {
				surrounded, err = state.PlaceTileForMove(a.Tile, a.Destination)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("action %d (%s by player %d): %w", i, a.Type, a.Player, err)
		}

		for len(surrounded) > 0 {
			game.SortPositions(surrounded)
			if _, err := state.PopPiece(surrounded[0]); err != nil {
				return nil, fmt.Errorf("action %d pop: %w", i, err)
			}
			var remaining []game.Position
			for _, c := range surrounded[1:] {
				if state.IsSurrounded(c) {
					remaining = append(remaining, c)
				}
			}
			surrounded = remaining
		}
	}
	return state, nil
}
