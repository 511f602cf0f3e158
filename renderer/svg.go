// Package renderer draws read-only board snapshots as SVG documents.
package renderer

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/sirpthatch/tangosim/game"
)

// Color scheme.
var playerColors = map[int]string{
	0: "#2E86AB", // steel blue
	1: "#E94F37", // vermilion red
}

const (
	hexagonFill     = "#F8F8F8"
	hexagonStroke   = "#888888"
	availableFill   = "#E8FFE8"
	availableStroke = "#88CC88"
	backgroundColor = "#FFFFFF"
	scoreFooterBG   = "#F0F0F0"
	textColor       = "#333333"

	scoreFooterHeight = 50.0
	padding           = 30.0
)

// Options controls what a render includes.
type Options struct {
	HexSize         float64 // center-to-corner radius in pixels; 0 means 40
	ShowAvailable   bool    // outline positions where a tile could be placed
	ShowCoordinates bool    // label tiles with their (q,r)
}

func (o Options) hexSize() float64 {
	if o.HexSize <= 0 {
		return 40
	}
	return o.HexSize
}

type point struct {
	x, y float64
}

// axialToPixel converts axial coordinates to the center pixel of a
// pointy-top hexagon.
func axialToPixel(p game.Position, size float64) point {
	return point{
		x: size * math.Sqrt(3) * (float64(p.Q) + float64(p.R)/2),
		y: size * 1.5 * float64(p.R),
	}
}

// hexagonCorners returns the six corners of a pointy-top hexagon,
// starting at -30 degrees.
func hexagonCorners(center point, size float64) [6]point {
	var corners [6]point
	for i := 0; i < 6; i++ {
		angle := float64(60*i-30) * math.Pi / 180
		corners[i] = point{
			x: center.x + size*math.Cos(angle),
			y: center.y + size*math.Sin(angle),
		}
	}
	return corners
}

// edgeTriangle returns the marker triangle for a tile edge: the two
// edge corners inset toward each other plus an apex toward the center.
// Game edge 0 faces the top neighbor, which is the hexagon edge between
// corners 4 and 5; subsequent edges advance one corner clockwise.
func edgeTriangle(corners [6]point, center point, edge int) [3]point {
	const inset = 0.05
	start := corners[(edge+4)%6]
	end := corners[(edge+5)%6]

	insetStart := point{
		x: start.x + inset*(end.x-start.x),
		y: start.y + inset*(end.y-start.y),
	}
	insetEnd := point{
		x: end.x + inset*(start.x-end.x),
		y: end.y + inset*(start.y-end.y),
	}
	mid := point{x: (start.x + end.x) / 2, y: (start.y + end.y) / 2}
	apex := point{
		x: mid.x + (1-inset*2)*(center.x-mid.x),
		y: mid.y + (1-inset*2)*(center.y-mid.y),
	}
	return [3]point{insetStart, insetEnd, apex}
}

func svgPolygon(points []point, fill, stroke string, strokeWidth float64, extra string) string {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%.2f,%.2f", p.x, p.y)
	}
	return fmt.Sprintf(`<polygon points="%s" fill="%s" stroke="%s" stroke-width="%g"%s/>`,
		strings.Join(coords, " "), fill, stroke, strokeWidth, extra)
}

func svgRect(x, y, w, h float64, fill, extra string) string {
	return fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"%s/>`,
		x, y, w, h, fill, extra)
}

func svgText(x, y float64, text string, fontSize int, anchor, fill, weight string) string {
	return fmt.Sprintf(`<text x="%.2f" y="%.2f" font-size="%d" font-family="system-ui, sans-serif" text-anchor="%s" fill="%s" font-weight="%s">%s</text>`,
		x, y, fontSize, anchor, fill, weight, text)
}

func playerColor(color int) string {
	if c, ok := playerColors[color]; ok {
		return c
	}
	return "#999999"
}

func renderTile(sb *strings.Builder, tile game.Tile, center point, size float64, opts Options, pos game.Position) {
	corners := hexagonCorners(center, size)
	sb.WriteString("  " + svgPolygon(corners[:], hexagonFill, hexagonStroke, 1.5, "") + "\n")

	color := playerColor(tile.Color)
	for i, marked := range tile.Pattern {
		if !marked {
			continue
		}
		tri := edgeTriangle(corners, center, i)
		sb.WriteString("  " + svgPolygon(tri[:], color, color, 0.5, "") + "\n")
	}

	if opts.ShowCoordinates {
		label := fmt.Sprintf("(%d,%d)", pos.Q, pos.R)
		sb.WriteString("  " + svgText(center.x, center.y+4, label, 10, "middle", "#666666", "normal") + "\n")
	}
}

func renderAvailable(sb *strings.Builder, center point, size float64) {
	corners := hexagonCorners(center, size)
	sb.WriteString("  " + svgPolygon(corners[:], availableFill, availableStroke, 1.5,
		` stroke-dasharray="5,5" opacity="0.6"`) + "\n")
}

func renderScoreFooter(sb *strings.Builder, scores []int, width, startX, startY float64) {
	sb.WriteString("  " + svgRect(startX, startY, width, scoreFooterHeight, scoreFooterBG, ` rx="5"`) + "\n")

	swatchY := startY + 13
	for player, s := range scores {
		swatchX := startX + 15
		if player > 0 {
			swatchX = startX + width - 150*float64(len(scores)-player)
		}
		sb.WriteString("  " + svgRect(swatchX, swatchY, 24, 24, playerColor(player), ` rx="3"`) + "\n")
		label := fmt.Sprintf("Player %d: %d", player+1, s)
		sb.WriteString("  " + svgText(swatchX+34, swatchY+17, label, 16, "start", textColor, "bold") + "\n")
	}
}

// Render returns a complete SVG document for the board snapshot.
func Render(state *game.GameState, opts Options) string {
	size := opts.hexSize()
	tiles := state.Tiles()
	available := state.AvailablePositions()
	scores := state.Scores()

	positions := make([]game.Position, 0, len(tiles)+len(available))
	for p := range tiles {
		positions = append(positions, p)
	}
	if opts.ShowAvailable {
		positions = append(positions, available...)
	}
	if len(positions) == 0 {
		positions = append(positions, game.Position{})
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range positions {
		c := axialToPixel(p, size)
		minX = math.Min(minX, c.x-size)
		maxX = math.Max(maxX, c.x+size)
		minY = math.Min(minY, c.y-size)
		maxY = math.Max(maxY, c.y+size)
	}

	boardBottom := maxY
	minX -= padding
	minY -= padding
	maxX += padding
	maxY += padding + scoreFooterHeight + 10

	width := maxX - minX
	height := maxY - minY

	var sb strings.Builder
	fmt.Fprintf(&sb, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb,
		"<svg xmlns=\"http://www.w3.org/2000/svg\"\n     width=\"%.0f\" height=\"%.0f\"\n     viewBox=\"%.2f %.2f %.2f %.2f\">\n",
		width, height, minX, minY, width, height)
	sb.WriteString("  " + svgRect(minX, minY, width, height, backgroundColor, "") + "\n")

	// Frontier outlines go first so tiles draw on top of them.
	if opts.ShowAvailable {
		for _, p := range available {
			renderAvailable(&sb, axialToPixel(p, size), size)
		}
	}

	tilePositions := make([]game.Position, 0, len(tiles))
	for p := range tiles {
		tilePositions = append(tilePositions, p)
	}
	game.SortPositions(tilePositions)
	for _, p := range tilePositions {
		renderTile(&sb, tiles[p], axialToPixel(p, size), size, opts, p)
	}

	renderScoreFooter(&sb, scores, width-20, minX+10, boardBottom+padding)
	sb.WriteString("</svg>\n")
	return sb.String()
}

// SaveSVG renders the board and writes the document to path.
func SaveSVG(state *game.GameState, path string, opts Options) error {
	if err := os.WriteFile(path, []byte(Render(state, opts)), 0644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}
