package game

// Tile is a hexagonal game piece: a six-edge marker pattern, an owning
// player color, and an identity that survives rotation. A Tile value is
// immutable after construction; Rotate returns a new value sharing the
// same ID, which is what lets scoring dedupe a matched pair of edges no
// matter which side of the pair is visited first.
type Tile struct {
	Pattern [6]bool `json:"pattern"`
	Color   int     `json:"color"`
	ID      int     `json:"id"`
}

// NewTile builds a tile. IDs should come from an IDSource so they stay
// unique within one game session.
func NewTile(pattern [6]bool, color, id int) Tile {
	return Tile{Pattern: pattern, Color: color, ID: id}
}

// Rotate returns the tile turned clockwise by steps. Edge i of the
// result carries the marker of edge (i-steps) mod 6 of the original.
func (t Tile) Rotate(steps int) Tile {
	k := ((steps % 6) + 6) % 6
	if k == 0 {
		return t
	}
	var rotated [6]bool
	for i := 0; i < 6; i++ {
		rotated[i] = t.Pattern[(i-k+6)%6]
	}
	return Tile{Pattern: rotated, Color: t.Color, ID: t.ID}
}

// RotationallyEqual reports whether other has the same color and a
// pattern that is some cyclic rotation of t's.
func (t Tile) RotationallyEqual(other Tile) bool {
	if t.Color != other.Color {
		return false
	}
	for k := 0; k < 6; k++ {
		if t.Rotate(k).Pattern == other.Pattern {
			return true
		}
	}
	return false
}

// Marks returns the number of marked edges. Fewer marks means more
// mobility when the tile relocates.
func (t Tile) Marks() int {
	count := 0
	for _, marked := range t.Pattern {
		if marked {
			count++
		}
	}
	return count
}

// IDSource hands out tile identities for one game session. It is scoped
// to a session rather than package-global so that concurrently running
// games never share a counter.
type IDSource struct {
	next int
}

func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns a fresh identity.
func (s *IDSource) Next() int {
	id := s.next
	s.next++
	return id
}
