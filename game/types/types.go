package types

// Point is a cell coordinate on the grid. Also used as a unit direction vector.
type Point struct {
	X, Y int
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Direction represents a cardinal direction
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a movement vector
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns a cellCount x cellCount grid.
func NewSquareGrid(cellCount int) Grid {
	return Grid{Width: cellCount, Height: cellCount}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Size is the number of cells on the grid.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.Size())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// ContainsPoint reports whether p is one of points.
func ContainsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}

// Game constants
const (
	SpeedUpEvery         = 5  // Points between two speed-ups
	MaxPlacementAttempts = 64 // Random samples before falling back to the free-cell set
)

// InitialBody is the canonical starting snake, head first.
func InitialBody() []Point {
	return []Point{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}
}

// InitialDirection is the heading a snake starts with.
func InitialDirection() Point {
	return RIGHT.ToPoint()
}
