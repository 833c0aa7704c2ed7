package manager

import (
	"testing"

	"retro-snake/game/entity"
	"retro-snake/game/types"
)

func TestEdgeCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(25))

	tests := []struct {
		head types.Point
		want CollisionType
	}{
		{types.Point{X: 25, Y: 5}, EdgeCollision},
		{types.Point{X: -1, Y: 5}, EdgeCollision},
		{types.Point{X: 5, Y: 25}, EdgeCollision},
		{types.Point{X: 5, Y: -1}, EdgeCollision},
		{types.Point{X: 24, Y: 24}, NoCollision},
		{types.Point{X: 0, Y: 0}, NoCollision},
	}

	for _, tt := range tests {
		snake := &entity.Snake{Body: []types.Point{tt.head}}
		if got := cm.CheckCollision(snake); got != tt.want {
			t.Errorf("Head %v: expected %v, got %v", tt.head, tt.want, got)
		}
	}
}

func TestTailCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(25))

	snake := &entity.Snake{Body: []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 5}}}
	if got := cm.CheckCollision(snake); got != TailCollision {
		t.Errorf("Expected tail collision, got %v", got)
	}

	snake = entity.NewSnake()
	if got := cm.CheckCollision(snake); got != NoCollision {
		t.Errorf("Expected no collision for the initial snake, got %v", got)
	}
}

func TestFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(25))
	snake := entity.NewSnake()

	if cm.IsFoodCollision(snake, &entity.Food{Position: types.Point{X: 6, Y: 9}}) != true {
		t.Error("Expected head on food to collide")
	}
	if cm.IsFoodCollision(snake, &entity.Food{Position: types.Point{X: 5, Y: 9}}) {
		t.Error("Food under the body is not eaten")
	}
}
