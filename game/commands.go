package game

import "retro-snake/game/types"

// Command is a discrete input event.
type Command int

const (
	CommandUp Command = iota
	CommandDown
	CommandLeft
	CommandRight
	CommandRestart
)

// Direction returns the heading a command asks for, if any.
func (c Command) Direction() (types.Direction, bool) {
	switch c {
	case CommandUp:
		return types.UP, true
	case CommandDown:
		return types.DOWN, true
	case CommandLeft:
		return types.LEFT, true
	case CommandRight:
		return types.RIGHT, true
	default:
		return types.NONE, false
	}
}
