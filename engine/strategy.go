package engine

import "github.com/sirpthatch/tangosim/game"

// Strategy decides a player's actions. The engine treats it as an
// opaque collaborator: a strategy must only return decisions it has
// already confirmed legal through the board's query surface
// (AvailablePositions, ScorePotentialMove, LegalMoves). An illegal
// decision aborts the game run; there is no retry.
//
// Strategies may keep per-player state (turn counters, diagnostics) and
// must be instantiated fresh per game when games run concurrently.
type Strategy interface {
	// DecidePlacement returns a tile drawn from hand, possibly rotated,
	// and a currently available position to place it at.
	DecidePlacement(state *game.GameState, hand []game.Tile) (game.Tile, game.Position, error)

	// DecideMove may relocate one of the player's tiles already on the
	// board instead of placing. Returning nil means "place instead".
	// Only consulted in advanced mode.
	DecideMove(state *game.GameState, hand []game.Tile, player int) (*Move, error)

	// ChoosePop returns the element of candidates to pop next.
	// Candidates is never empty.
	ChoosePop(state *game.GameState, hand []game.Tile, candidates []game.Position) (game.Position, error)
}

// Move is a relocation of a tile already on the board. Tile carries the
// rotation the piece should land with; its ID must match the tile at
// Origin.
type Move struct {
	Origin      game.Position
	Destination game.Position
	Tile        game.Tile
}
