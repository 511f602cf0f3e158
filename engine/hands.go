package engine

import "github.com/sirpthatch/tangosim/game"

// standardPatterns is the 13-tile set each player starts with: the
// single-mark tile, the distinct two-, three- and four-mark
// arrangements up to rotation, and the five- and six-mark tiles.
var standardPatterns = [][6]bool{
	{true, false, false, false, false, false},

	{true, true, false, false, false, false},
	{true, false, true, false, false, false},
	{true, false, false, true, false, false},

	{true, true, true, false, false, false},
	{true, false, true, true, false, false},
	{true, false, true, false, true, false},
	{true, false, true, false, false, true},

	{false, false, true, true, true, true},
	{false, true, false, true, true, true},
	{false, true, true, false, true, true},

	{true, true, true, true, true, false},
	{true, true, true, true, true, true},
}

// StandardHand deals a fresh starting hand for one player, drawing tile
// identities from ids.
func StandardHand(color int, ids *game.IDSource) []game.Tile {
	hand := make([]game.Tile, 0, len(standardPatterns))
	for _, pattern := range standardPatterns {
		hand = append(hand, game.NewTile(pattern, color, ids.Next()))
	}
	return hand
}
