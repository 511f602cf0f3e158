package game

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Position is an axial hex coordinate (q, r). The board is unbounded:
// positions grow in any direction as tiles are placed.
type Position struct {
	Q int
	R int
}

// neighborOffsets lists the six adjacent offsets in clockwise order
// starting from the top edge. Offset i lines up with tile edge i: the
// neighbor at offset i is the one a tile's edge-i marker faces.
var neighborOffsets = [6]Position{
	{0, -1},
	{1, -1},
	{1, 0},
	{0, 1},
	{-1, 1},
	{-1, 0},
}

// Neighbors returns the six adjacent positions in edge order.
func (p Position) Neighbors() [6]Position {
	var out [6]Position
	for i, d := range neighborOffsets {
		out[i] = Position{p.Q + d.Q, p.R + d.R}
	}
	return out
}

// Neighbor returns the adjacent position across edge i.
func (p Position) Neighbor(edge int) Position {
	d := neighborOffsets[edge]
	return Position{p.Q + d.Q, p.R + d.R}
}

// OppositeEdge returns the edge index on a neighboring tile that faces
// edge i of the current tile across their shared border.
func OppositeEdge(i int) int {
	return (i + 3) % 6
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Q, p.R)
}

// MarshalJSON serializes a position as the two-element array [q, r].
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Q, p.R})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("position must be a [q, r] pair: %w", err)
	}
	p.Q, p.R = pair[0], pair[1]
	return nil
}

// SortPositions orders positions by q, then r. Board operations that
// return position lists sort them so callers see deterministic output.
func SortPositions(positions []Position) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Q != positions[j].Q {
			return positions[i].Q < positions[j].Q
		}
		return positions[i].R < positions[j].R
	})
}
