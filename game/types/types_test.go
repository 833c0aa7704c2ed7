package types

import "testing"

func TestGridContains(t *testing.T) {
	grid := NewSquareGrid(25)

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{24, 24}, true},
		{Point{12, 3}, true},
		{Point{25, 5}, false},
		{Point{5, 25}, false},
		{Point{-1, 5}, false},
		{Point{5, -1}, false},
	}

	for _, tt := range tests {
		if got := grid.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v): expected %v, got %v", tt.p, tt.want, got)
		}
	}
}

func TestGridCells(t *testing.T) {
	grid := Grid{Width: 3, Height: 2}
	cells := grid.Cells()
	if len(cells) != grid.Size() {
		t.Fatalf("Expected %d cells, got %d", grid.Size(), len(cells))
	}
	for _, c := range cells {
		if !grid.Contains(c) {
			t.Errorf("Cell %v outside grid", c)
		}
	}
	if cells[0] != (Point{0, 0}) || cells[len(cells)-1] != (Point{2, 1}) {
		t.Errorf("Expected row-major order, got %v", cells)
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{UP, RIGHT, DOWN, LEFT} {
		if d.Opposite().ToPoint() != d.ToPoint().Neg() {
			t.Errorf("Opposite of %v: expected %v, got %v", d, d.ToPoint().Neg(), d.Opposite().ToPoint())
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
	}
}

func TestContainsPoint(t *testing.T) {
	body := InitialBody()
	if !ContainsPoint(body, Point{5, 9}) {
		t.Error("Expected (5,9) to be part of the initial body")
	}
	if ContainsPoint(body, Point{7, 9}) {
		t.Error("Expected (7,9) not to be part of the initial body")
	}
	if ContainsPoint(nil, Point{0, 0}) {
		t.Error("Expected empty body to contain nothing")
	}
}

func TestInitialBodyIsFresh(t *testing.T) {
	a := InitialBody()
	a[0] = Point{0, 0}
	if InitialBody()[0] != (Point{6, 9}) {
		t.Error("InitialBody must return a new slice each call")
	}
}
