package ui

import (
	"fmt"

	"retro-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	title         = "Retro Snake Game"
	titleFontSize = 40
	hudFontSize   = 40
	infoFontSize  = 20
	borderWidth   = 5
)

var (
	lightGreen = rl.Color{R: 173, G: 204, B: 96, A: 255}
	darkGreen  = rl.Color{R: 43, G: 51, B: 24, A: 255}
	foodRed    = rl.Color{R: 190, G: 33, B: 55, A: 255}
)

// Renderer draws game snapshots on a fixed cell layout.
type Renderer struct {
	cellSize  int32
	cellCount int32
	offset    int32
}

func NewRenderer(cellSize, cellCount, offset int) *Renderer {
	return &Renderer{
		cellSize:  int32(cellSize),
		cellCount: int32(cellCount),
		offset:    int32(offset),
	}
}

func (r *Renderer) screenSize() int32 {
	return r.cellSize * r.cellCount
}

// Draw renders one frame. Callers wrap it in BeginDrawing/EndDrawing.
func (r *Renderer) Draw(snap game.Snapshot) {
	rl.ClearBackground(lightGreen)

	size := float32(r.screenSize())
	rl.DrawRectangleLinesEx(
		rl.Rectangle{
			X:      float32(r.offset - borderWidth),
			Y:      float32(r.offset - borderWidth),
			Width:  size + 2*borderWidth,
			Height: size + 2*borderWidth,
		},
		borderWidth, darkGreen)

	r.drawFood(snap)
	r.drawSnake(snap)
	r.drawHUD(snap)
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	for _, p := range snap.Body {
		segment := rl.Rectangle{
			X:      float32(r.offset + int32(p.X)*r.cellSize),
			Y:      float32(r.offset + int32(p.Y)*r.cellSize),
			Width:  float32(r.cellSize),
			Height: float32(r.cellSize),
		}
		rl.DrawRectangleRounded(segment, 0.5, 6, darkGreen)
	}
}

func (r *Renderer) drawFood(snap game.Snapshot) {
	half := r.cellSize / 2
	rl.DrawCircle(
		r.offset+int32(snap.Food.X)*r.cellSize+half,
		r.offset+int32(snap.Food.Y)*r.cellSize+half,
		float32(half)-2, foodRed)
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	rl.DrawText(title, r.offset, 20, titleFontSize, darkGreen)

	bottom := r.offset + r.screenSize() + 10
	rl.DrawText(fmt.Sprintf("%d", snap.Score), r.offset, bottom, hudFontSize, darkGreen)

	best := fmt.Sprintf("Best: %d", snap.HighScore)
	bestWidth := rl.MeasureText(best, hudFontSize)
	rl.DrawText(best, r.offset+r.screenSize()-bestWidth, bottom, hudFontSize, darkGreen)

	speed := fmt.Sprintf("%dms", snap.Interval.Milliseconds())
	speedWidth := rl.MeasureText(speed, infoFontSize)
	rl.DrawText(speed, r.offset+r.screenSize()-speedWidth, 30, infoFontSize, darkGreen)

	if !snap.Running {
		prompt := "Press an arrow key to start"
		width := rl.MeasureText(prompt, infoFontSize)
		rl.DrawText(prompt, r.offset+(r.screenSize()-width)/2, r.offset+r.screenSize()/2, infoFontSize, darkGreen)
	}
}
