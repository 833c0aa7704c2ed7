package main

import (
	"flag"
	"fmt"
	"os"

	"retro-snake/config"
	"retro-snake/game"
	"retro-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

func main() {
	envFile := flag.String("env", ".env", "Optional .env file with SNAKE_* settings")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = current time)")
	cells := flag.Int("cells", 0, "Cells per side (overrides SNAKE_CELL_COUNT)")
	statsFile := flag.String("stats", "", "Write a JSON session report here on exit")
	flag.Parse()
	defer glog.Flush()

	if err := run(*envFile, *seed, *cells, *statsFile); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(envFile string, seed uint64, cells int, statsFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "cells":
			cfg.CellCount = cells
		case "stats":
			cfg.StatsFile = statsFile
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	glog.Infof("Starting game: %d cells of %dpx, tick %v", cfg.CellCount, cfg.CellSize, cfg.TickInterval)

	screen := int32(cfg.ScreenSize())
	rl.InitWindow(screen, screen, "Snake Game")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	sounds := ui.NewSoundPlayer(cfg.SoundsDir)
	defer sounds.Close()

	g, err := game.NewGame(cfg.GameConfig(), sounds)
	if err != nil {
		return err
	}
	renderer := ui.NewRenderer(cfg.CellSize, cfg.CellCount, cfg.Offset)

	var ticker game.Ticker
	for !rl.WindowShouldClose() {
		if ticker.Due(rl.GetTime(), g.Interval()) {
			if err := g.Tick(); err != nil {
				glog.Errorf("Tick failed: %v", err)
			}
		}

		for _, cmd := range ui.ReadInput() {
			g.Handle(cmd)
		}

		rl.BeginDrawing()
		renderer.Draw(g.Snapshot())
		rl.EndDrawing()
	}

	stats := g.Stats()
	glog.Infof("Session over: %d rounds, best %d, average %.1f", stats.GamesPlayed, stats.HighScore, stats.AverageScore)
	if cfg.StatsFile != "" {
		if err := g.SaveStats(cfg.StatsFile); err != nil {
			glog.Errorf("Failed to save stats: %v", err)
		}
	}
	return nil
}
