package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirpthatch/tangosim/game"
)

func TestRenderEmptyBoard(t *testing.T) {
	state := game.NewGameState(2)
	svg := Render(state, Options{})

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, "<svg xmlns=") {
		t.Error("missing svg element")
	}
	if !strings.Contains(svg, "Player 1: 0") || !strings.Contains(svg, "Player 2: 0") {
		t.Error("missing score footer entries")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestRenderTilesAndMarkers(t *testing.T) {
	state := game.NewGameState(2)
	full := game.NewTile([6]bool{true, true, true, true, true, true}, 0, 1)
	if _, err := state.PlaceTile(full, game.Position{Q: 0, R: 0}); err != nil {
		t.Fatal(err)
	}
	if _, err := state.PlaceTile(game.NewTile([6]bool{true, true, true, true, true, true}, 0, 2), game.Position{Q: 0, R: -1}); err != nil {
		t.Fatal(err)
	}

	svg := Render(state, Options{})
	// Two hexagons plus twelve marker triangles.
	if got := strings.Count(svg, "<polygon"); got != 14 {
		t.Errorf("rendered %d polygons, want 14", got)
	}
	if !strings.Contains(svg, playerColors[0]) {
		t.Error("player color missing from markers")
	}
	if !strings.Contains(svg, "Player 1: 1") {
		t.Error("score footer should show the matched pair")
	}
}

func TestRenderShowAvailable(t *testing.T) {
	state := game.NewGameState(2)
	if _, err := state.PlaceTile(game.NewTile([6]bool{}, 0, 1), game.Position{Q: 0, R: 0}); err != nil {
		t.Fatal(err)
	}

	plain := Render(state, Options{})
	withFrontier := Render(state, Options{ShowAvailable: true})
	if strings.Contains(plain, "stroke-dasharray") {
		t.Error("frontier outlines rendered without ShowAvailable")
	}
	// One dashed outline per available position.
	if got := strings.Count(withFrontier, "stroke-dasharray"); got != 6 {
		t.Errorf("rendered %d frontier outlines, want 6", got)
	}
}

func TestRenderShowCoordinates(t *testing.T) {
	state := game.NewGameState(2)
	if _, err := state.PlaceTile(game.NewTile([6]bool{}, 0, 1), game.Position{Q: 0, R: 0}); err != nil {
		t.Fatal(err)
	}

	svg := Render(state, Options{ShowCoordinates: true})
	if !strings.Contains(svg, "(0,0)") {
		t.Error("coordinate label missing")
	}
}

func TestSaveSVG(t *testing.T) {
	state := game.NewGameState(2)
	if _, err := state.PlaceTile(game.NewTile([6]bool{}, 0, 1), game.Position{Q: 0, R: 0}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "board.svg")
	if err := SaveSVG(state, path, Options{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("saved file is not an SVG document")
	}
}
