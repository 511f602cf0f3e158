// Package recorder persists completed games as flat JSON records and
// rebuilds board states from them.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirpthatch/tangosim/engine"
	"github.com/sirpthatch/tangosim/game"
)

// GameRecord is the persisted form of a completed game: the mode, every
// player's starting hand, the committed actions in order, and the
// outcome.
type GameRecord struct {
	GameMode     string        `json:"game_mode"`
	InitialTiles [][]game.Tile `json:"initial_tiles"`
	Actions      []game.Action `json:"actions"`
	FinalScores  []int         `json:"final_scores"`
	Winner       int           `json:"winner"`
	Rounds       int           `json:"rounds"`
}

// NewGameRecord assembles a record, deriving the winner from the final
// scores (-1 for a tie).
func NewGameRecord(mode engine.Mode, initialTiles [][]game.Tile, actions []game.Action, finalScores []int, rounds int) GameRecord {
	return GameRecord{
		GameMode:     string(mode),
		InitialTiles: initialTiles,
		Actions:      actions,
		FinalScores:  finalScores,
		Winner:       winnerOf(finalScores),
		Rounds:       rounds,
	}
}

// FromGame records a finished game straight from the engine.
func FromGame(g *engine.Game, finalScores []int, rounds int) GameRecord {
	return NewGameRecord(g.Mode(), g.InitialHands(), g.Actions(), finalScores, rounds)
}

func winnerOf(scores []int) int {
	winner := -1
	best := 0
	for i, s := range scores {
		switch {
		case winner == -1 && i == 0, s > best:
			winner, best = i, s
		case s == best:
			winner = -1
		}
	}
	return winner
}

// Validate checks every recorded action's tagging invariant.
func (r GameRecord) Validate() error {
	for i, a := range r.Actions {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}
	return nil
}

// ToJSON renders the record as indented JSON.
func (r GameRecord) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode game record: %w", err)
	}
	return data, nil
}

// FromJSON parses a record and validates its actions.
func FromJSON(data []byte) (GameRecord, error) {
	var r GameRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return GameRecord{}, fmt.Errorf("failed to decode game record: %w", err)
	}
	if err := r.Validate(); err != nil {
		return GameRecord{}, err
	}
	return r, nil
}

// Save writes the record to a JSON file.
func (r GameRecord) Save(path string) error {
	data, err := r.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write game record: %w", err)
	}
	return nil
}

// Load reads a record from a JSON file.
func Load(path string) (GameRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameRecord{}, fmt.Errorf("failed to read game record: %w", err)
	}
	return FromJSON(data)
}
