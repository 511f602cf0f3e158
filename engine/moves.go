package engine

import "github.com/sirpthatch/tangosim/game"

// LegalMoves enumerates every legal relocation of the tile at origin: a
// tile may travel up to 6 minus its marked-edge count steps through
// empty cells (occupied tiles block transit), landing at any rotation
// that satisfies edge matching against occupied neighbors and does not
// leave the destination fully surrounded. The vacated origin counts as
// empty for both checks. A fully marked tile cannot move at all.
//
// Strategies use this to enumerate candidates; the engine relies on the
// same rules when validating a chosen move.
func LegalMoves(state *game.GameState, origin game.Position) []Move {
	tile, ok := state.TileAt(origin)
	if !ok {
		return nil
	}
	steps := 6 - tile.Marks()
	if steps <= 0 {
		return nil
	}

	type frontier struct {
		pos   game.Position
		depth int
	}
	visited := map[game.Position]struct{}{origin: {}}
	queue := []frontier{{origin, 0}}
	var reachable []game.Position
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if f.depth == steps {
			continue
		}
		for _, n := range f.pos.Neighbors() {
			if _, seen := visited[n]; seen {
				continue
			}
			if state.Occupied(n) {
				continue
			}
			visited[n] = struct{}{}
			reachable = append(reachable, n)
			queue = append(queue, frontier{n, f.depth + 1})
		}
	}
	game.SortPositions(reachable)

	var moves []Move
	for _, dest := range reachable {
		seen := make(map[[6]bool]struct{}, 6)
		for rot := 0; rot < 6; rot++ {
			rotated := tile.Rotate(rot)
			if _, dup := seen[rotated.Pattern]; dup {
				continue
			}
			seen[rotated.Pattern] = struct{}{}
			if moveFits(state, origin, rotated, dest) {
				moves = append(moves, Move{Origin: origin, Destination: dest, Tile: rotated})
			}
		}
	}
	return moves
}

// moveFits checks a single destination/rotation pair, treating the
// vacated origin as empty.
func moveFits(state *game.GameState, origin game.Position, tile game.Tile, dest game.Position) bool {
	occupied := 0
	for i, n := range dest.Neighbors() {
		if n == origin {
			continue
		}
		other, ok := state.TileAt(n)
		if !ok {
			continue
		}
		occupied++
		if tile.Pattern[i] != other.Pattern[game.OppositeEdge(i)] {
			return false
		}
	}
	return occupied < 6
}
