// Package config loads game and window settings from defaults, an optional
// .env file and the process environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"retro-snake/game"
	"retro-snake/game/manager"
	"retro-snake/game/types"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	KeyCellCount    = "SNAKE_CELL_COUNT"
	KeyCellSize     = "SNAKE_CELL_SIZE"
	KeyOffset       = "SNAKE_OFFSET"
	KeyFPS          = "SNAKE_FPS"
	KeyTickInterval = "SNAKE_TICK_INTERVAL"
	KeySpeedUpStep  = "SNAKE_SPEEDUP_STEP"
	KeyMinInterval  = "SNAKE_MIN_INTERVAL"
	KeySpeedUpEvery = "SNAKE_SPEEDUP_EVERY"
	KeySeed         = "SNAKE_SEED"
	KeySoundsDir    = "SNAKE_SOUNDS_DIR"
	KeyStatsFile    = "SNAKE_STATS_FILE"
)

type Config struct {
	CellCount int
	CellSize  int
	Offset    int
	FPS       int

	TickInterval time.Duration
	SpeedUpStep  time.Duration
	MinInterval  time.Duration
	SpeedUpEvery int
	Seed         uint64

	SoundsDir string
	StatsFile string // empty disables the session report
}

func Default() Config {
	d := game.DefaultConfig()
	return Config{
		CellCount:    d.Grid.Width,
		CellSize:     25,
		Offset:       70,
		FPS:          60,
		TickInterval: d.Difficulty.InitialInterval,
		SpeedUpStep:  d.Difficulty.Step,
		MinInterval:  d.Difficulty.MinInterval,
		SpeedUpEvery: d.Difficulty.SpeedUpEvery,
		SoundsDir:    "Sounds",
	}
}

// Load reads envFile (a missing file is fine) and then the process
// environment on top of the defaults.
func Load(envFile string) (Config, error) {
	values := map[string]string{}
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, key := range []string{
		KeyCellCount, KeyCellSize, KeyOffset, KeyFPS, KeyTickInterval, KeySpeedUpStep,
		KeyMinInterval, KeySpeedUpEvery, KeySeed, KeySoundsDir, KeyStatsFile,
	} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	cfg, err := FromMap(values)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// FromMap applies values over the defaults.
func FromMap(values map[string]string) (Config, error) {
	cfg := Default()
	p := parser{values: values}

	p.intVar(KeyCellCount, &cfg.CellCount)
	p.intVar(KeyCellSize, &cfg.CellSize)
	p.intVar(KeyOffset, &cfg.Offset)
	p.intVar(KeyFPS, &cfg.FPS)
	p.durationVar(KeyTickInterval, &cfg.TickInterval)
	p.durationVar(KeySpeedUpStep, &cfg.SpeedUpStep)
	p.durationVar(KeyMinInterval, &cfg.MinInterval)
	p.intVar(KeySpeedUpEvery, &cfg.SpeedUpEvery)
	p.uint64Var(KeySeed, &cfg.Seed)
	p.stringVar(KeySoundsDir, &cfg.SoundsDir)
	p.stringVar(KeyStatsFile, &cfg.StatsFile)

	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyCellSize, c.CellSize)
	}
	if c.Offset < 0 {
		return fmt.Errorf("%s must not be negative, got %d", KeyOffset, c.Offset)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyFPS, c.FPS)
	}
	return c.GameConfig().Validate()
}

// GameConfig is the part of the settings the game controller uses.
func (c Config) GameConfig() game.Config {
	return game.Config{
		Grid: types.NewSquareGrid(c.CellCount),
		Difficulty: manager.Difficulty{
			InitialInterval: c.TickInterval,
			Step:            c.SpeedUpStep,
			MinInterval:     c.MinInterval,
			SpeedUpEvery:    c.SpeedUpEvery,
		},
		Seed: c.Seed,
	}
}

// ScreenSize is the window side length in pixels.
func (c Config) ScreenSize() int {
	return 2*c.Offset + c.CellSize*c.CellCount
}

// parser keeps the first error and skips the rest.
type parser struct {
	values map[string]string
	err    error
}

func (p *parser) lookup(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok && v != ""
}

func (p *parser) intVar(key string, dst *int) {
	if v, ok := p.lookup(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.err = fmt.Errorf("invalid %s %q: %w", key, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) uint64Var(key string, dst *uint64) {
	if v, ok := p.lookup(key); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			p.err = fmt.Errorf("invalid %s %q: %w", key, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) durationVar(key string, dst *time.Duration) {
	if v, ok := p.lookup(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			p.err = fmt.Errorf("invalid %s %q: %w", key, v, err)
			return
		}
		*dst = d
	}
}

func (p *parser) stringVar(key string, dst *string) {
	if v, ok := p.lookup(key); ok {
		*dst = v
	}
}
