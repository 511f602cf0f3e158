package game

import (
	"fmt"
)

// GameState is the mutable board of one game: placed tiles keyed by
// position, the frontier of legally available positions, and the
// bounding envelope that limits enclosure detection. A GameState is
// mutated by exactly one goroutine at a time (the turn engine of one
// game); concurrent games must run on independent instances.
type GameState struct {
	tiles      map[Position]Tile
	available  map[Position]struct{}
	min, max   Position // envelope of reachable positions, incl. 1-cell margin
	numPlayers int
}

// NewGameState creates an empty board whose only available position is
// the origin.
func NewGameState(numPlayers int) *GameState {
	gs := &GameState{
		tiles:      make(map[Position]Tile),
		available:  make(map[Position]struct{}),
		min:        Position{-1, -1},
		max:        Position{1, 1},
		numPlayers: numPlayers,
	}
	gs.available[Position{0, 0}] = struct{}{}
	return gs
}

func (gs *GameState) NumPlayers() int {
	return gs.numPlayers
}

// TileAt returns the tile at pos, if any.
func (gs *GameState) TileAt(pos Position) (Tile, bool) {
	t, ok := gs.tiles[pos]
	return t, ok
}

// Occupied reports whether a tile sits at pos.
func (gs *GameState) Occupied(pos Position) bool {
	_, ok := gs.tiles[pos]
	return ok
}

// Tiles returns a copy of the occupied-tile mapping. Mutating the copy
// does not affect the board.
func (gs *GameState) Tiles() map[Position]Tile {
	tiles := make(map[Position]Tile, len(gs.tiles))
	for p, t := range gs.tiles {
		tiles[p] = t
	}
	return tiles
}

// IsAvailable reports whether pos is a legal strict-placement target.
func (gs *GameState) IsAvailable(pos Position) bool {
	_, ok := gs.available[pos]
	return ok
}

// AvailablePositions returns the frontier as a sorted slice.
func (gs *GameState) AvailablePositions() []Position {
	positions := make([]Position, 0, len(gs.available))
	for p := range gs.available {
		positions = append(positions, p)
	}
	SortPositions(positions)
	return positions
}

// Copy deep-copies the board so callers can experiment without touching
// the live game.
func (gs *GameState) Copy() *GameState {
	tilesCopy := make(map[Position]Tile, len(gs.tiles))
	for p, t := range gs.tiles {
		tilesCopy[p] = t
	}
	availableCopy := make(map[Position]struct{}, len(gs.available))
	for p := range gs.available {
		availableCopy[p] = struct{}{}
	}
	return &GameState{
		tiles:      tilesCopy,
		available:  availableCopy,
		min:        gs.min,
		max:        gs.max,
		numPlayers: gs.numPlayers,
	}
}

// IsSurrounded reports whether all six neighbors of pos are occupied.
// The position itself need not hold a tile.
func (gs *GameState) IsSurrounded(pos Position) bool {
	return surroundedIn(gs.tiles, pos)
}

func surroundedIn(tiles map[Position]Tile, pos Position) bool {
	for _, n := range pos.Neighbors() {
		if _, ok := tiles[n]; !ok {
			return false
		}
	}
	return true
}

// IsEnclosed reports whether an empty region reachable from pos is
// sealed off from the exterior: the traversal walks unoccupied cells
// with an explicit stack and escapes as soon as it steps outside the
// bounding envelope. Recomputed freshly per query, since any placement
// can flip the enclosure status of arbitrarily distant empty cells.
func (gs *GameState) IsEnclosed(pos Position) bool {
	visited := map[Position]struct{}{pos: {}}
	stack := []Position{pos}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.Q < gs.min.Q || p.Q > gs.max.Q || p.R < gs.min.R || p.R > gs.max.R {
			return false
		}
		for _, n := range p.Neighbors() {
			if _, occupied := gs.tiles[n]; occupied {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			stack = append(stack, n)
		}
	}
	return true
}

// FindConflictingTile returns the first edge whose marker disagrees
// with an occupied neighbor's facing marker, along with that neighbor's
// tile. Both marked-vs-unmarked and unmarked-vs-marked disagree; the
// two facing markers must be exactly equal.
func (gs *GameState) FindConflictingTile(tile Tile, pos Position) (int, Tile, bool) {
	for i, n := range pos.Neighbors() {
		other, ok := gs.tiles[n]
		if !ok {
			continue
		}
		if tile.Pattern[i] != other.Pattern[OppositeEdge(i)] {
			return i, other, true
		}
	}
	return 0, Tile{}, false
}

// PlaceTile places tile at an available position and returns the
// neighbors that became fully surrounded, sorted. Deciding whether and
// in what order those tiles pop is the caller's business.
func (gs *GameState) PlaceTile(tile Tile, pos Position) ([]Position, error) {
	if _, ok := gs.tiles[pos]; ok {
		return nil, fmt.Errorf("%w: %v", ErrOccupied, pos)
	}
	if !gs.IsAvailable(pos) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, pos)
	}
	return gs.commitPlacement(tile, pos)
}

// PlaceTileForMove is the placement path for relocations. A move may
// legally land inside an enclosed pocket, so the enclosure half of the
// availability rule is waived; edge matching and the self-surround rule
// still apply.
func (gs *GameState) PlaceTileForMove(tile Tile, pos Position) ([]Position, error) {
	if _, ok := gs.tiles[pos]; ok {
		return nil, fmt.Errorf("%w: %v", ErrOccupied, pos)
	}
	return gs.commitPlacement(tile, pos)
}

func (gs *GameState) commitPlacement(tile Tile, pos Position) ([]Position, error) {
	if edge, other, found := gs.FindConflictingTile(tile, pos); found {
		return nil, fmt.Errorf("%w: %v and %v at border %d of %v",
			ErrEdgeMismatch, tile.Pattern, other.Pattern, edge, pos)
	}
	if gs.IsSurrounded(pos) {
		return nil, fmt.Errorf("%w: %v", ErrSelfSurround, pos)
	}

	gs.tiles[pos] = tile
	delete(gs.available, pos)
	gs.extendEnvelope(pos)

	neighbors := pos.Neighbors()
	for _, n := range neighbors {
		if _, occupied := gs.tiles[n]; occupied {
			continue
		}
		if !gs.IsSurrounded(n) && !gs.IsEnclosed(n) {
			gs.available[n] = struct{}{}
		}
	}
	// A single placement can seal off frontier positions far from its
	// own border, so the whole available set is re-checked.
	for p := range gs.available {
		if gs.IsSurrounded(p) || gs.IsEnclosed(p) {
			delete(gs.available, p)
		}
	}

	var surrounded []Position
	for _, n := range neighbors {
		if _, occupied := gs.tiles[n]; occupied && gs.IsSurrounded(n) {
			surrounded = append(surrounded, n)
		}
	}
	SortPositions(surrounded)
	return surrounded, nil
}

func (gs *GameState) extendEnvelope(pos Position) {
	gs.min.Q = min(gs.min.Q, pos.Q-1)
	gs.min.R = min(gs.min.R, pos.R-1)
	gs.max.Q = max(gs.max.Q, pos.Q+1)
	gs.max.R = max(gs.max.R, pos.R+1)
}

// PopPiece removes and returns the tile at pos. The available set is
// deliberately untouched: what a popped cell becomes is the turn
// engine's call, not the board's.
func (gs *GameState) PopPiece(pos Position) (Tile, error) {
	t, ok := gs.tiles[pos]
	if !ok {
		return Tile{}, fmt.Errorf("%w: %v", ErrEmptyPop, pos)
	}
	delete(gs.tiles, pos)
	return t, nil
}

// RemoveTile removes the tile at pos for a relocation: the vacated
// position rejoins the frontier and frontier neighbors are re-checked.
// Removal can never create new enclosure, but the check mirrors the
// placement path.
func (gs *GameState) RemoveTile(pos Position) (Tile, error) {
	t, ok := gs.tiles[pos]
	if !ok {
		return Tile{}, fmt.Errorf("%w: %v", ErrEmptyRemoval, pos)
	}
	delete(gs.tiles, pos)
	gs.available[pos] = struct{}{}
	for _, n := range pos.Neighbors() {
		if _, ok := gs.available[n]; !ok {
			continue
		}
		if gs.IsSurrounded(n) || gs.IsEnclosed(n) {
			delete(gs.available, n)
		}
	}
	return t, nil
}

// WouldMoveDisconnectBoard reports whether relocating the tile at from
// to to would split the occupied-tile graph into more than one
// connected component. Pure query: the hypothetical post-move graph is
// built on the side and traversed from the destination.
func (gs *GameState) WouldMoveDisconnectBoard(from, to Position) bool {
	occupied := make(map[Position]struct{}, len(gs.tiles)+1)
	for p := range gs.tiles {
		occupied[p] = struct{}{}
	}
	delete(occupied, from)
	occupied[to] = struct{}{}

	if len(occupied) <= 1 {
		return false
	}

	visited := map[Position]struct{}{to: {}}
	queue := []Position{to}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range p.Neighbors() {
			if _, ok := occupied[n]; !ok {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(visited) != len(occupied)
}
