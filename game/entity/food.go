package entity

import "retro-snake/game/types"

// Food is the single active food cell.
type Food struct {
	Position types.Point
}
