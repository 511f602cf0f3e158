package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoresAdjacentPair(t *testing.T) {
	gs := NewGameState(2)
	mustPlace(t, gs, marked(0, 1), Position{0, 0})
	mustPlace(t, gs, marked(0, 2), Position{0, -1})

	// One pair, one point, no double counting from visiting both sides.
	require.Equal(t, []int{1, 0}, gs.Scores())
}

func TestScoresMixedColors(t *testing.T) {
	gs := NewGameState(2)
	ids := NewIDSource()
	mustPlace(t, gs, marked(0, ids.Next()), Position{0, 0})
	mustPlace(t, gs, marked(0, ids.Next()), Position{0, -1})
	mustPlace(t, gs, marked(1, ids.Next()), Position{1, -1})
	mustPlace(t, gs, marked(1, ids.Next()), Position{1, 0})
	require.Equal(t, []int{1, 1}, gs.Scores())

	// A third tile of color 0 closes a second pair for that player.
	mustPlace(t, gs, marked(0, ids.Next()), Position{0, 1})
	require.Equal(t, []int{2, 1}, gs.Scores())
}

func TestScoresUnmarkedEdgesDoNotCount(t *testing.T) {
	gs := NewGameState(2)
	mustPlace(t, gs, blank(0, 1), Position{0, 0})
	mustPlace(t, gs, blank(0, 2), Position{1, 0})
	require.Equal(t, []int{0, 0}, gs.Scores())
}

func TestScorePopAlternatingRing(t *testing.T) {
	gs := NewGameState(2)
	ids := NewIDSource()
	mustPlace(t, gs, marked(0, ids.Next()), Position{0, 0})

	ring := Position{0, 0}.Neighbors()
	for i, pos := range ring {
		mustPlace(t, gs, marked(i%2, ids.Next()), pos)
	}

	// The center borders three own pairs and three opposing pairs:
	// popping it costs its owner three points and hands the opponent
	// three.
	require.Equal(t, -3, gs.ScorePop(Position{0, 0}, 0))
	require.Equal(t, 3, gs.ScorePop(Position{0, 0}, 1))
	require.Equal(t, 0, gs.ScorePop(Position{5, 5}, 0))
}

func TestScorePotentialMove(t *testing.T) {
	gs := NewGameState(2)
	mustPlace(t, gs, marked(0, 1), Position{0, 0})

	score, ok := gs.ScorePotentialMove(marked(0, 2), Position{0, -1})
	require.True(t, ok)
	require.Equal(t, 1, score)

	// Opposing color matches the edges but scores nothing.
	score, ok = gs.ScorePotentialMove(marked(1, 3), Position{0, -1})
	require.True(t, ok)
	require.Equal(t, 0, score)

	// Unavailable positions are not evaluated.
	_, ok = gs.ScorePotentialMove(marked(0, 4), Position{5, 5})
	require.False(t, ok)

	// A facing-edge mismatch is illegal, not merely worth zero.
	_, ok = gs.ScorePotentialMove(blank(0, 5), Position{0, -1})
	require.False(t, ok)
}

func TestScorePotentialMoveCountsBestPop(t *testing.T) {
	gs := NewGameState(2)
	ids := NewIDSource()
	mustPlace(t, gs, marked(0, ids.Next()), Position{0, 0})

	// Five of six ring cells: three own, two opposing.
	ring := Position{0, 0}.Neighbors()
	for i := 0; i < 5; i++ {
		mustPlace(t, gs, marked(i%2, ids.Next()), ring[i])
	}

	// Closing the ring surrounds the center. For color 1 the new tile
	// touches no same-colored neighbor, but popping the center is worth
	// +3: the center then borders three color-1 tiles, the closer
	// included.
	score, ok := gs.ScorePotentialMove(marked(1, ids.Next()), ring[5])
	require.True(t, ok)
	require.Equal(t, 3, score)

	// For color 0 the immediate three matches are outweighed by the
	// pop, which would cost four own pairs.
	score, ok = gs.ScorePotentialMove(marked(0, ids.Next()), ring[5])
	require.True(t, ok)
	require.Equal(t, -1, score)
}
