package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sirpthatch/tangosim/game"
	"github.com/sirpthatch/tangosim/utils"
)

// Mode selects the end-condition variant.
type Mode string

const (
	// ModeSimple ends a player's game once their hand is empty.
	ModeSimple Mode = "simple"
	// ModeAdvanced additionally requires the player to hold the
	// strictly highest score, and allows relocating placed tiles.
	ModeAdvanced Mode = "advanced"
)

var ErrUnknownMode = errors.New("unknown game mode")

// MaxRounds caps the turn loop so a game cannot spin forever. A game
// returning rounds == MaxRounds was cut off, not finished.
const MaxRounds = 500

// Game drives alternating turns across players, applying each
// strategy's decisions to the board and resolving pop cascades.
type Game struct {
	mode            Mode
	state           *game.GameState
	players         []Strategy
	hands           [][]game.Tile
	initialHands    [][]game.Tile
	actions         []game.Action
	ids             *game.IDSource
	checkDisconnect bool
	rounds          int
}

type Option func(*Game)

// WithHands overrides the standard starting hands. Tile IDs must be
// unique across all hands.
func WithHands(hands [][]game.Tile) Option {
	return func(g *Game) {
		g.hands = hands
	}
}

// WithDisconnectCheck toggles the optional validation hook that rejects
// relocations splitting the tile graph. On by default.
func WithDisconnectCheck(enabled bool) Option {
	return func(g *Game) {
		g.checkDisconnect = enabled
	}
}

// New builds a game in the given mode with one strategy per player.
func New(mode Mode, players []Strategy, options ...Option) (*Game, error) {
	if mode != ModeSimple && mode != ModeAdvanced {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if len(players) < 2 {
		return nil, fmt.Errorf("need at least two players, got %d", len(players))
	}

	g := &Game{
		mode:            mode,
		players:         players,
		state:           game.NewGameState(len(players)),
		ids:             game.NewIDSource(),
		checkDisconnect: true,
	}
	for _, option := range options {
		option(g)
	}

	if g.hands == nil {
		g.hands = make([][]game.Tile, len(players))
		for color := range players {
			g.hands[color] = StandardHand(color, g.ids)
		}
	}
	if len(g.hands) != len(players) {
		return nil, fmt.Errorf("have %d hands for %d players", len(g.hands), len(players))
	}

	g.initialHands = make([][]game.Tile, len(g.hands))
	for i, hand := range g.hands {
		g.initialHands[i] = append([]game.Tile(nil), hand...)
	}
	return g, nil
}

// State returns the live board. Callers other than the active player's
// strategy must treat it as read-only.
func (g *Game) State() *game.GameState {
	return g.state
}

func (g *Game) Mode() Mode {
	return g.mode
}

// Actions returns the history of committed actions.
func (g *Game) Actions() []game.Action {
	return append([]game.Action(nil), g.actions...)
}

// InitialHands returns the starting hands as dealt, for recording.
func (g *Game) InitialHands() [][]game.Tile {
	hands := make([][]game.Tile, len(g.initialHands))
	for i, hand := range g.initialHands {
		hands[i] = append([]game.Tile(nil), hand...)
	}
	return hands
}

// Hand returns a copy of a player's current hand.
func (g *Game) Hand(player int) []game.Tile {
	return append([]game.Tile(nil), g.hands[player]...)
}

// Rounds returns the number of turns executed so far.
func (g *Game) Rounds() int {
	return g.rounds
}

// ActivePlayer returns the index of the player to move next.
func (g *Game) ActivePlayer() int {
	return g.rounds % len(g.players)
}

// Step executes one turn for the active player. It reports done once
// the game reaches a terminal state or the round cap; a non-nil error
// means the strategy made an illegal decision and the run is aborted.
func (g *Game) Step() (bool, error) {
	if g.rounds >= MaxRounds {
		log.Warn().Int("rounds", g.rounds).Msg("round cap reached without a terminal state")
		return true, nil
	}
	active := g.ActivePlayer()
	if g.isGameOver(active) {
		log.Debug().Int("player", active).Int("rounds", g.rounds).Msg("game over")
		return true, nil
	}
	if err := g.playTurn(active); err != nil {
		return true, err
	}
	g.rounds++
	return false, nil
}

// Play runs the game to completion. It returns the final board, the
// index of the player whose turn ended the game, and the number of
// turns executed (== MaxRounds for a capped game). A non-nil error
// means a strategy made an illegal decision and the run was aborted.
func (g *Game) Play() (*game.GameState, int, int, error) {
	for {
		done, err := g.Step()
		if err != nil {
			return g.state, g.ActivePlayer(), g.rounds, err
		}
		if done {
			return g.state, g.ActivePlayer(), g.rounds, nil
		}
	}
}

func (g *Game) isGameOver(active int) bool {
	if len(g.hands[active]) > 0 {
		return false
	}
	if g.mode == ModeSimple {
		return true
	}
	// Advanced: an empty hand only wins from the strict score lead.
	scores := g.state.Scores()
	for i, s := range scores {
		if i != active && s >= scores[active] {
			return false
		}
	}
	return true
}

func (g *Game) playTurn(active int) error {
	strat := g.players[active]
	hand := g.hands[active]

	if g.mode == ModeAdvanced {
		move, err := strat.DecideMove(g.state, hand, active)
		if err != nil {
			return fmt.Errorf("player %d move decision: %w", active, err)
		}
		if move != nil {
			return g.applyMove(active, *move)
		}
	}

	if len(hand) == 0 {
		// An advanced game keeps going past an empty hand while the
		// player is not the outright score leader; with no tiles left
		// and no move chosen there is nothing to do this turn.
		log.Debug().Int("player", active).Msg("empty hand, no move chosen; skipping turn")
		return nil
	}

	tile, pos, err := strat.DecidePlacement(g.state, hand)
	if err != nil {
		return fmt.Errorf("player %d placement decision: %w", active, err)
	}
	surrounded, err := g.state.PlaceTile(tile, pos)
	if err != nil {
		return fmt.Errorf("player %d placement: %w", active, err)
	}
	g.removeFromHand(active, tile)
	g.actions = append(g.actions, game.NewPlaceAction(tile, active, pos))
	log.Debug().Int("player", active).Stringer("pos", pos).Int("tile", tile.ID).Msg("placed tile")

	return g.resolvePops(active, surrounded)
}

func (g *Game) applyMove(active int, mv Move) error {
	origin, ok := g.state.TileAt(mv.Origin)
	if !ok {
		return fmt.Errorf("player %d move: %w at %v", active, game.ErrEmptyRemoval, mv.Origin)
	}
	if origin.ID != mv.Tile.ID || origin.Color != mv.Tile.Color {
		return fmt.Errorf("player %d move: tile %d is not at %v", active, mv.Tile.ID, mv.Origin)
	}
	if g.checkDisconnect && g.state.WouldMoveDisconnectBoard(mv.Origin, mv.Destination) {
		return fmt.Errorf("player %d move %v -> %v would disconnect the board",
			active, mv.Origin, mv.Destination)
	}
	if _, err := g.state.RemoveTile(mv.Origin); err != nil {
		return fmt.Errorf("player %d move: %w", active, err)
	}
	surrounded, err := g.state.PlaceTileForMove(mv.Tile, mv.Destination)
	if err != nil {
		return fmt.Errorf("player %d move: %w", active, err)
	}
	g.actions = append(g.actions, game.NewMoveAction(mv.Tile, active, mv.Destination, mv.Origin))
	log.Debug().Int("player", active).
		Stringer("from", mv.Origin).Stringer("to", mv.Destination).
		Int("tile", mv.Tile.ID).Msg("moved tile")

	return g.resolvePops(active, surrounded)
}

// resolvePops runs the pop cascade: the active player's strategy picks
// which surrounded tile pops next, the popped tile returns to its
// owner's hand, and the candidate list is re-filtered since popping one
// tile can un-surround another.
func (g *Game) resolvePops(active int, candidates []game.Position) error {
	for len(candidates) > 0 {
		pos, err := g.players[active].ChoosePop(g.state, g.hands[active], candidates)
		if err != nil {
			return fmt.Errorf("player %d pop decision: %w", active, err)
		}
		if utils.FindIndex(candidates, func(c game.Position) bool { return c == pos }) < 0 {
			return fmt.Errorf("player %d chose pop %v outside candidates %v", active, pos, candidates)
		}
		tile, err := g.state.PopPiece(pos)
		if err != nil {
			return fmt.Errorf("player %d pop: %w", active, err)
		}
		g.hands[tile.Color] = append(g.hands[tile.Color], tile)
		log.Debug().Int("player", active).Stringer("pos", pos).
			Int("owner", tile.Color).Msg("popped tile")

		var remaining []game.Position
		for _, c := range candidates {
			if c != pos && g.state.IsSurrounded(c) {
				remaining = append(remaining, c)
			}
		}
		candidates = remaining
	}
	return nil
}

func (g *Game) removeFromHand(player int, tile game.Tile) {
	i := utils.FindIndex(g.hands[player], func(t game.Tile) bool { return t.ID == tile.ID })
	if i >= 0 {
		g.hands[player] = append(g.hands[player][:i], g.hands[player][i+1:]...)
	}
}
