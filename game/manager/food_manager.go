package manager

import (
	"errors"
	"time"

	"retro-snake/game/entity"
	"retro-snake/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when every cell is covered by the snake.
var ErrBoardFull = errors.New("board full: no free cell for food")

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

// NewFoodManager creates a food manager. A zero seed uses the current time.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewFood creates food placed off the given snake body.
func (fm *FoodManager) NewFood(snakeBody []types.Point) (*entity.Food, error) {
	food := &entity.Food{}
	if err := fm.Place(food, snakeBody); err != nil {
		return nil, err
	}
	return food, nil
}

// Place moves food to a random cell not covered by snakeBody.
func (fm *FoodManager) Place(food *entity.Food, snakeBody []types.Point) error {
	pos, err := fm.GenerateFood(snakeBody)
	if err != nil {
		return err
	}
	food.Position = pos
	return nil
}

// GenerateFood samples random cells until one is free. After
// MaxPlacementAttempts misses it picks uniformly among the free cells.
func (fm *FoodManager) GenerateFood(snakeBody []types.Point) (types.Point, error) {
	for i := 0; i < types.MaxPlacementAttempts; i++ {
		food := fm.randomCell()
		if !types.ContainsPoint(snakeBody, food) {
			return food, nil
		}
	}

	occupied := make(map[types.Point]struct{}, len(snakeBody))
	for _, p := range snakeBody {
		occupied[p] = struct{}{}
	}
	free := make([]types.Point, 0, fm.grid.Size())
	for _, c := range fm.grid.Cells() {
		if _, ok := occupied[c]; !ok {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) randomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}
