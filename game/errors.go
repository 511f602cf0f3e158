package game

import "errors"

// Board operations either fully succeed or fail with one of these
// sentinels wrapped in context; a failed operation never leaves a
// partial mutation behind.
var (
	ErrOccupied     = errors.New("position already occupied")
	ErrUnavailable  = errors.New("position not available")
	ErrEdgeMismatch = errors.New("tile markers do not line up")
	ErrSelfSurround = errors.New("placement would be immediately surrounded")
	ErrEmptyPop     = errors.New("no tile to pop")
	ErrEmptyRemoval = errors.New("no tile to remove")
)
