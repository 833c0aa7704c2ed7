package manager

import (
	"errors"
	"testing"

	"retro-snake/game/entity"
	"retro-snake/game/types"
)

func TestPlaceAvoidsSnake(t *testing.T) {
	grid := types.NewSquareGrid(25)
	snake := entity.NewSnake()

	for seed := uint64(1); seed <= 200; seed++ {
		fm := NewFoodManager(grid, seed)
		food, err := fm.NewFood(snake.Body)
		if err != nil {
			t.Fatalf("Seed %d: unexpected error %v", seed, err)
		}
		for i := 0; i < 20; i++ {
			if types.ContainsPoint(snake.Body, food.Position) {
				t.Fatalf("Seed %d: food placed on snake at %v", seed, food.Position)
			}
			if !grid.Contains(food.Position) {
				t.Fatalf("Seed %d: food placed outside grid at %v", seed, food.Position)
			}
			if err := fm.Place(food, snake.Body); err != nil {
				t.Fatalf("Seed %d: unexpected error %v", seed, err)
			}
		}
	}
}

func TestPlaceDenseBoardUsesFreeCell(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	cells := grid.Cells()
	free := types.Point{X: 2, Y: 3}

	body := make([]types.Point, 0, len(cells)-1)
	for _, c := range cells {
		if c != free {
			body = append(body, c)
		}
	}

	for seed := uint64(1); seed <= 20; seed++ {
		fm := NewFoodManager(grid, seed)
		got, err := fm.GenerateFood(body)
		if err != nil {
			t.Fatalf("Seed %d: unexpected error %v", seed, err)
		}
		if got != free {
			t.Errorf("Seed %d: expected the only free cell %v, got %v", seed, free, got)
		}
	}
}

func TestPlaceFullBoard(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, 7)
	food := &entity.Food{Position: types.Point{X: 1, Y: 1}}

	err := fm.Place(food, grid.Cells())
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("Expected ErrBoardFull, got %v", err)
	}
	if food.Position != (types.Point{X: 1, Y: 1}) {
		t.Errorf("Food must not move on failure, got %v", food.Position)
	}
}

func TestSameSeedSamePlacement(t *testing.T) {
	grid := types.NewSquareGrid(25)
	body := types.InitialBody()
	a := NewFoodManager(grid, 42)
	b := NewFoodManager(grid, 42)
	for i := 0; i < 10; i++ {
		pa, _ := a.GenerateFood(body)
		pb, _ := b.GenerateFood(body)
		if pa != pb {
			t.Fatalf("Expected identical sequences, got %v and %v at %d", pa, pb, i)
		}
	}
}
