package game

// Scores recomputes the per-player score vector from scratch. Every
// adjacent pair of same-colored tiles joined across two marked facing
// edges is worth one point to the owner, counted once per pair: the
// pair is deduplicated by the unordered pair of tile identities, so the
// traversal order over the map never double-counts.
func (gs *GameState) Scores() []int {
	scores := make([]int, gs.numPlayers)
	type pair struct{ low, high int }
	counted := make(map[pair]struct{})

	for pos, tile := range gs.tiles {
		for i, n := range pos.Neighbors() {
			if !tile.Pattern[i] {
				continue
			}
			other, ok := gs.tiles[n]
			if !ok || other.Color != tile.Color || !other.Pattern[OppositeEdge(i)] {
				continue
			}
			key := pair{tile.ID, other.ID}
			if key.low > key.high {
				key.low, key.high = key.high, key.low
			}
			if _, seen := counted[key]; seen {
				continue
			}
			counted[key] = struct{}{}
			if tile.Color >= 0 && tile.Color < gs.numPlayers {
				scores[tile.Color]++
			}
		}
	}
	return scores
}

// ScorePop returns the net score delta for player color should the tile
// at pos be popped now: each matched edge into color's own pair is a
// point lost if the popped tile belongs to color, and a point gained if
// it belongs to an opponent.
func (gs *GameState) ScorePop(pos Position, color int) int {
	return scorePopAt(gs.tiles, pos, color)
}

func scorePopAt(tiles map[Position]Tile, pos Position, color int) int {
	tile, ok := tiles[pos]
	if !ok {
		return 0
	}
	delta := 0
	for i, n := range pos.Neighbors() {
		if !tile.Pattern[i] {
			continue
		}
		other, ok := tiles[n]
		if !ok || !other.Pattern[OppositeEdge(i)] {
			continue
		}
		if other.Color != color {
			continue
		}
		if tile.Color == color {
			delta--
		} else {
			delta++
		}
	}
	return delta
}

// ScorePotentialMove evaluates placing tile at pos without mutating the
// board: the immediate adjacency score plus the best single pop the
// placement would trigger. Returns false when pos is not available or
// any occupied neighbor's edge would mismatch. An evaluation aid for
// strategies.
func (gs *GameState) ScorePotentialMove(tile Tile, pos Position) (int, bool) {
	if !gs.IsAvailable(pos) {
		return 0, false
	}

	immediate := 0
	for i, n := range pos.Neighbors() {
		other, ok := gs.tiles[n]
		if !ok {
			continue
		}
		if tile.Pattern[i] != other.Pattern[OppositeEdge(i)] {
			return 0, false
		}
		if tile.Pattern[i] && other.Color == tile.Color {
			immediate++
		}
	}

	// Overlay the hypothetical placement to see which neighbors it
	// would surround; pops are evaluated against the post-placement
	// board, since the new tile may itself hold one side of a pair.
	overlay := make(map[Position]Tile, len(gs.tiles)+1)
	for p, t := range gs.tiles {
		overlay[p] = t
	}
	overlay[pos] = tile

	bestPop := 0
	havePop := false
	for _, n := range pos.Neighbors() {
		if _, ok := overlay[n]; !ok {
			continue
		}
		if !surroundedIn(overlay, n) {
			continue
		}
		delta := scorePopAt(overlay, n, tile.Color)
		if !havePop || delta > bestPop {
			bestPop = delta
			havePop = true
		}
	}
	if !havePop {
		bestPop = 0
	}
	return immediate + bestPop, true
}
