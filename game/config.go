package game

import (
	"fmt"
	"time"

	"retro-snake/game/manager"
	"retro-snake/game/types"
)

// Config is everything the controller needs to run rounds.
type Config struct {
	Grid       types.Grid
	Difficulty manager.Difficulty
	Seed       uint64 // 0 seeds food placement from the clock
}

func DefaultConfig() Config {
	return Config{
		Grid: types.NewSquareGrid(25),
		Difficulty: manager.Difficulty{
			InitialInterval: 200 * time.Millisecond,
			Step:            20 * time.Millisecond,
			MinInterval:     60 * time.Millisecond,
			SpeedUpEvery:    types.SpeedUpEvery,
		},
	}
}

// Validate checks that the starting snake fits on the grid with room for
// food and that the difficulty settings are coherent.
func (c Config) Validate() error {
	body := types.InitialBody()
	for _, p := range body {
		if !c.Grid.Contains(p) {
			return fmt.Errorf("grid %dx%d too small for starting snake at %v", c.Grid.Width, c.Grid.Height, p)
		}
	}
	if c.Grid.Size() <= len(body) {
		return fmt.Errorf("grid %dx%d leaves no room for food", c.Grid.Width, c.Grid.Height)
	}

	d := c.Difficulty
	if d.InitialInterval <= 0 {
		return fmt.Errorf("initial interval must be positive, got %v", d.InitialInterval)
	}
	if d.MinInterval <= 0 || d.MinInterval > d.InitialInterval {
		return fmt.Errorf("min interval must be in (0, %v], got %v", d.InitialInterval, d.MinInterval)
	}
	if d.Step < 0 {
		return fmt.Errorf("speed-up step must not be negative, got %v", d.Step)
	}
	if d.SpeedUpEvery < 0 {
		return fmt.Errorf("speed-up period must not be negative, got %d", d.SpeedUpEvery)
	}
	return nil
}
