package ui

import (
	"retro-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCommands = []struct {
	key int32
	cmd game.Command
}{
	{rl.KeyUp, game.CommandUp},
	{rl.KeyDown, game.CommandDown},
	{rl.KeyLeft, game.CommandLeft},
	{rl.KeyRight, game.CommandRight},
	{rl.KeySpace, game.CommandRestart},
	{rl.KeyEnter, game.CommandRestart},
}

// ReadInput returns the commands whose key went down this frame.
func ReadInput() []game.Command {
	var cmds []game.Command
	for _, kc := range keyCommands {
		if rl.IsKeyPressed(kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}
	return cmds
}
