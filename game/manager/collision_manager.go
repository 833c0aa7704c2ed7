package manager

import (
	"retro-snake/game/entity"
	"retro-snake/game/types"
)

// CollisionType represents the outcome of a collision check
type CollisionType int

const (
	NoCollision CollisionType = iota
	EdgeCollision
	TailCollision
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case EdgeCollision:
		return "edge"
	case TailCollision:
		return "tail"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if the snake head is on the food
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food *entity.Food) bool {
	return snake.Head() == food.Position
}

// IsEdgeCollision checks if the head has left the grid
func (cm *CollisionManager) IsEdgeCollision(snake *entity.Snake) bool {
	return !cm.grid.Contains(snake.Head())
}

// IsTailCollision checks if the head overlaps the rest of the body
func (cm *CollisionManager) IsTailCollision(snake *entity.Snake) bool {
	return snake.HitsTail()
}

// CheckCollision runs the edge check then the tail check.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.IsEdgeCollision(snake) {
		return EdgeCollision
	}
	if cm.IsTailCollision(snake) {
		return TailCollision
	}
	return NoCollision
}
