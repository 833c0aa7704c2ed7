package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.CellCount != 25 || cfg.CellSize != 25 || cfg.Offset != 70 {
		t.Errorf("Unexpected board defaults %+v", cfg)
	}
	if cfg.TickInterval != 200*time.Millisecond {
		t.Errorf("Expected 200ms tick, got %v", cfg.TickInterval)
	}
	if cfg.ScreenSize() != 2*70+25*25 {
		t.Errorf("Expected screen size %d, got %d", 2*70+25*25, cfg.ScreenSize())
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		KeyCellCount:    "30",
		KeyTickInterval: "150ms",
		KeySpeedUpEvery: "3",
		KeySeed:         "99",
		KeyStatsFile:    "out/stats.json",
		KeySoundsDir:    "",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.CellCount != 30 || cfg.TickInterval != 150*time.Millisecond || cfg.SpeedUpEvery != 3 || cfg.Seed != 99 {
		t.Errorf("Values not applied: %+v", cfg)
	}
	if cfg.StatsFile != "out/stats.json" {
		t.Errorf("Expected stats file, got %q", cfg.StatsFile)
	}
	if cfg.SoundsDir != "Sounds" {
		t.Errorf("Empty value must keep the default, got %q", cfg.SoundsDir)
	}

	gc := cfg.GameConfig()
	if gc.Grid.Width != 30 || gc.Grid.Height != 30 || gc.Seed != 99 {
		t.Errorf("Unexpected game config %+v", gc)
	}
}

func TestFromMapErrors(t *testing.T) {
	for key, value := range map[string]string{
		KeyCellCount:    "many",
		KeyTickInterval: "fast",
		KeySeed:         "-1",
	} {
		if _, err := FromMap(map[string]string{key: value}); err == nil {
			t.Errorf("Expected an error for %s=%q", key, value)
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SNAKE_CELL_COUNT=20\nSNAKE_MIN_INTERVAL=80ms\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(KeyCellCount, "22")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellCount != 22 {
		t.Errorf("Environment must override the file, got %d", cfg.CellCount)
	}
	if cfg.MinInterval != 80*time.Millisecond {
		t.Errorf("Expected 80ms from file, got %v", cfg.MinInterval)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Missing env file must not fail: %v", err)
	}
	if cfg.CellCount != Default().CellCount {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv(KeyCellCount, "5")
	if _, err := Load(""); err == nil {
		t.Error("Expected a grid too small for the starting snake to be rejected")
	}
}
