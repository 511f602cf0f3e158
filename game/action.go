package game

import "fmt"

// ActionType tags a recorded action.
type ActionType string

const (
	ActionPlace ActionType = "PLACE"
	ActionMove  ActionType = "MOVE"
)

// Action is the externally visible record of one turn: a placement of a
// tile from hand or a relocation of a tile already on the board. Its
// JSON form is the only persisted game format.
type Action struct {
	Type        ActionType `json:"action_type"`
	Tile        Tile       `json:"tile"`
	Player      int        `json:"player"`
	Destination Position   `json:"destination"`
	Origin      *Position  `json:"origin"`
}

// NewPlaceAction records player placing tile at dest.
func NewPlaceAction(tile Tile, player int, dest Position) Action {
	return Action{Type: ActionPlace, Tile: tile, Player: player, Destination: dest}
}

// NewMoveAction records player relocating tile from origin to dest.
func NewMoveAction(tile Tile, player int, dest, origin Position) Action {
	o := origin
	return Action{Type: ActionMove, Tile: tile, Player: player, Destination: dest, Origin: &o}
}

// Validate enforces the tagging invariant: PLACE never carries an
// origin, MOVE always does.
func (a Action) Validate() error {
	switch a.Type {
	case ActionPlace:
		if a.Origin != nil {
			return fmt.Errorf("PLACE action carries origin %v", *a.Origin)
		}
	case ActionMove:
		if a.Origin == nil {
			return fmt.Errorf("MOVE action has no origin")
		}
	default:
		return fmt.Errorf("unknown action type %q", a.Type)
	}
	return nil
}
