package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func blank(color, id int) Tile {
	return NewTile([6]bool{}, color, id)
}

func marked(color, id int) Tile {
	return NewTile([6]bool{true, true, true, true, true, true}, color, id)
}

func mustPlace(t *testing.T, gs *GameState, tile Tile, pos Position) []Position {
	t.Helper()
	surrounded, err := gs.PlaceTile(tile, pos)
	require.NoError(t, err, "placing %v at %v", tile.Pattern, pos)
	return surrounded
}

func TestNewGameStateStartsAtOrigin(t *testing.T) {
	gs := NewGameState(2)
	require.Equal(t, []Position{{0, 0}}, gs.AvailablePositions())
	require.Empty(t, gs.Tiles())
	require.Equal(t, 2, gs.NumPlayers())
}

func TestFirstPlacementOpensSixNeighbors(t *testing.T) {
	gs := NewGameState(2)
	surrounded := mustPlace(t, gs, blank(0, 1), Position{0, 0})
	require.Empty(t, surrounded)

	want := []Position{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}}
	SortPositions(want)
	require.Equal(t, want, gs.AvailablePositions())
	require.True(t, gs.Occupied(Position{0, 0}))
}

func TestPlaceTileRejectsOccupied(t *testing.T) {
	gs := NewGameState(2)
	mustPlace(t, gs, blank(0, 1), Position{0, 0})

	_, err := gs.PlaceTile(blank(1, 2), Position{0, 0})
	require.ErrorIs(t, err, ErrOccupied)
}

func TestPlaceTileRejectsUnavailable(t *testing.T) {
	gs := NewGameState(2)
	_, err := gs.PlaceTile(blank(0, 1), Position{5, 5})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestPlaceTileRejectsEdgeMismatch(t *testing.T) {
	gs := NewGameState(2)
	// Edge 0 marked, facing (0,-1).
	mustPlace(t, gs, NewTile([6]bool{true, false, false, false, false, false}, 0, 1), Position{0, 0})

	// An unmarked edge 3 faces the marked edge 0 below it.
	_, err := gs.PlaceTile(blank(1, 2), Position{0, -1})
	require.ErrorIs(t, err, ErrEdgeMismatch)

	// The matching orientation is fine.
	mustPlace(t, gs, NewTile([6]bool{false, false, false, true, false, false}, 1, 3), Position{0, -1})
}

func TestSurroundReportedOnSixthNeighbor(t *testing.T) {
	gs := NewGameState(2)
	ids := NewIDSource()
	mustPlace(t, gs, marked(0, ids.Next()), Position{0, 0})

	ring := Position{0, 0}.Neighbors()
	for i := 0; i < 5; i++ {
		surrounded := mustPlace(t, gs, marked(0, ids.Next()), ring[i])
		require.Empty(t, surrounded, "no tile is surrounded before the ring closes")
	}
	surrounded := mustPlace(t, gs, marked(0, ids.Next()), ring[5])
	require.Equal(t, []Position{{0, 0}}, surrounded)

	popped, err := gs.PopPiece(Position{0, 0})
	require.NoError(t, err)
	require.Equal(t, 0, popped.Color)
	require.False(t, gs.Occupied(Position{0, 0}))
	// A popped cell does not silently rejoin the frontier.
	require.False(t, gs.IsAvailable(Position{0, 0}))
}

func TestPopPieceEmpty(t *testing.T) {
	gs := NewGameState(2)
	_, err := gs.PopPiece(Position{0, 0})
	require.ErrorIs(t, err, ErrEmptyPop)
}

func TestRemoveTileReopensPosition(t *testing.T) {
	gs := NewGameState(2)
	mustPlace(t, gs, blank(0, 1), Position{0, 0})
	mustPlace(t, gs, blank(0, 2), Position{1, 0})

	removed, err := gs.RemoveTile(Position{1, 0})
	require.NoError(t, err)
	require.Equal(t, 2, removed.ID)
	require.True(t, gs.IsAvailable(Position{1, 0}))

	_, err = gs.RemoveTile(Position{1, 0})
	require.ErrorIs(t, err, ErrEmptyRemoval)
}

// buildPocket places a ring of eight blank tiles around the empty cells
// (0,1) and (1,1), walking the ring so every placement lands on the
// frontier.
func buildPocket(t *testing.T, gs *GameState) {
	t.Helper()
	ids := NewIDSource()
	ring := []Position{
		{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}, {0, 2}, {-1, 2}, {-1, 1},
	}
	for _, pos := range ring {
		mustPlace(t, gs, blank(0, ids.Next()), pos)
	}
}

func TestEnclosedPocketLeavesFrontier(t *testing.T) {
	gs := NewGameState(2)
	buildPocket(t, gs)

	for _, interior := range []Position{{0, 1}, {1, 1}} {
		require.True(t, gs.IsEnclosed(interior), "%v is sealed off", interior)
		require.False(t, gs.IsAvailable(interior))
	}
	require.False(t, gs.IsEnclosed(Position{0, -1}), "exterior cells escape the envelope")

	_, err := gs.PlaceTile(blank(1, 100), Position{0, 1})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMovePlacementMayEnterPocket(t *testing.T) {
	gs := NewGameState(2)
	buildPocket(t, gs)

	surrounded, err := gs.PlaceTileForMove(blank(1, 100), Position{0, 1})
	require.NoError(t, err)
	require.Empty(t, surrounded)
	require.True(t, gs.Occupied(Position{0, 1}))
}

func TestSelfSurroundRejected(t *testing.T) {
	gs := NewGameState(2)
	buildPocket(t, gs)
	// Fill one of the two pocket cells; the other would then have all
	// six neighbors occupied.
	_, err := gs.PlaceTileForMove(blank(1, 100), Position{0, 1})
	require.NoError(t, err)

	_, err = gs.PlaceTileForMove(blank(1, 101), Position{1, 1})
	require.ErrorIs(t, err, ErrSelfSurround)
}

func TestAvailableNeverSurrounded(t *testing.T) {
	gs := NewGameState(2)
	buildPocket(t, gs)
	for _, p := range gs.AvailablePositions() {
		require.False(t, gs.Occupied(p))
		require.False(t, gs.IsSurrounded(p))
		require.False(t, gs.IsEnclosed(p))
	}
}

func TestCopyIsIndependent(t *testing.T) {
	gs := NewGameState(2)
	mustPlace(t, gs, blank(0, 1), Position{0, 0})

	cp := gs.Copy()
	mustPlace(t, cp, blank(1, 2), Position{1, 0})

	require.False(t, gs.Occupied(Position{1, 0}))
	require.True(t, cp.Occupied(Position{1, 0}))
	require.True(t, gs.IsAvailable(Position{1, 0}))
}

func TestWouldMoveDisconnectBoard(t *testing.T) {
	gs := NewGameState(2)
	// Two lobes at (0,-1) and (1,0) joined by a bridge at the origin.
	mustPlace(t, gs, blank(0, 1), Position{0, 0})
	mustPlace(t, gs, blank(0, 2), Position{0, -1})
	mustPlace(t, gs, blank(0, 3), Position{1, 0})

	// (1,-1) touches both lobes, so the bridge may slide there.
	require.False(t, gs.WouldMoveDisconnectBoard(Position{0, 0}, Position{1, -1}))
	// Anywhere else splits the board in two.
	require.True(t, gs.WouldMoveDisconnectBoard(Position{0, 0}, Position{2, 0}))
	require.True(t, gs.WouldMoveDisconnectBoard(Position{0, 0}, Position{0, 1}))
}

func TestWouldMoveDisconnectBoardSingleTile(t *testing.T) {
	gs := NewGameState(2)
	mustPlace(t, gs, blank(0, 1), Position{0, 0})
	require.False(t, gs.WouldMoveDisconnectBoard(Position{0, 0}, Position{4, 4}))
}
