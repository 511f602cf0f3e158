package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceActionJSON(t *testing.T) {
	tile := NewTile([6]bool{true, false, false, true, false, false}, 0, 7)
	a := NewPlaceAction(tile, 0, Position{0, 1})

	data, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"action_type": "PLACE",
		"tile": {"pattern": [true, false, false, true, false, false], "color": 0, "id": 7},
		"player": 0,
		"destination": [0, 1],
		"origin": null
	}`, string(data))
}

func TestMoveActionJSON(t *testing.T) {
	tile := NewTile([6]bool{true, false, false, false, false, false}, 1, 3)
	a := NewMoveAction(tile, 1, Position{2, -1}, Position{0, 1})

	data, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"action_type": "MOVE",
		"tile": {"pattern": [true, false, false, false, false, false], "color": 1, "id": 3},
		"player": 1,
		"destination": [2, -1],
		"origin": [0, 1]
	}`, string(data))

	var decoded Action
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, a.Type, decoded.Type)
	require.Equal(t, a.Destination, decoded.Destination)
	require.NotNil(t, decoded.Origin)
	require.Equal(t, Position{0, 1}, *decoded.Origin)
}

func TestActionValidate(t *testing.T) {
	tile := NewTile([6]bool{}, 0, 1)

	require.NoError(t, NewPlaceAction(tile, 0, Position{0, 0}).Validate())
	require.NoError(t, NewMoveAction(tile, 0, Position{1, 0}, Position{0, 0}).Validate())

	bad := NewPlaceAction(tile, 0, Position{0, 0})
	origin := Position{1, 1}
	bad.Origin = &origin
	require.Error(t, bad.Validate())

	bad = NewMoveAction(tile, 0, Position{1, 0}, Position{0, 0})
	bad.Origin = nil
	require.Error(t, bad.Validate())

	bad.Type = "SWAP"
	require.Error(t, bad.Validate())
}
