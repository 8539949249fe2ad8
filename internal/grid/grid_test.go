package grid

import (
	"errors"
	"math"
	"testing"
)

func TestSnapReturnsGridMultiples(t *testing.T) {
	cases := []struct {
		v, gridSize, want float32
	}{
		{0.3, 1, 0},
		{-0.4, 1, 0},
		{0.6, 1, 1},
		{1.6, 1, 2},
		{2.4, 1, 2},
		{-1.7, 1, -2},
		{3.1, 0.5, 3},
		{0.74, 0.5, 0.5},
		{7, 2, 8},
	}

	for _, c := range cases {
		got := Snap(c.v, c.gridSize)
		if got != c.want {
			t.Errorf("Snap(%v, %v) = %v, want %v", c.v, c.gridSize, got, c.want)
		}

		// Result is a multiple of gridSize within float tolerance
		ratio := float64(got / c.gridSize)
		if math.Abs(ratio-math.Round(ratio)) > 1e-5 {
			t.Errorf("Snap(%v, %v) = %v is not a grid multiple", c.v, c.gridSize, got)
		}

		// Never moves more than half a cell
		if diff := math.Abs(float64(got - c.v)); diff > float64(c.gridSize)/2+1e-6 {
			t.Errorf("Snap(%v, %v) moved by %v, more than half a cell", c.v, c.gridSize, diff)
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	for _, v := range []float32{0.3, -0.4, 1.6, 2.4, -7.2, 0.5} {
		once := Snap(v, 1)
		if twice := Snap(once, 1); twice != once {
			t.Errorf("Snap(Snap(%v)) = %v, want %v", v, twice, once)
		}
	}
}

func TestSnapTieBreakAwayFromZero(t *testing.T) {
	// Exact half-cell values round away from zero.
	if got := Snap(0.5, 1); got != 1 {
		t.Errorf("Snap(0.5, 1) = %v, want 1", got)
	}
	if got := Snap(-0.5, 1); got != -1 {
		t.Errorf("Snap(-0.5, 1) = %v, want -1", got)
	}
	if got := Snap(0.25, 0.5); got != 0.5 {
		t.Errorf("Snap(0.25, 0.5) = %v, want 0.5", got)
	}
}

func TestNewParamsRejectsNonPositive(t *testing.T) {
	cases := []struct {
		size, epsilon float32
	}{
		{0, 0.001},
		{-1, 0.001},
		{1, 0},
		{1, -0.5},
	}
	for _, c := range cases {
		if _, err := NewParams(c.size, c.epsilon); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("NewParams(%v, %v) err = %v, want ErrInvalidConfiguration", c.size, c.epsilon, err)
		}
	}

	if _, err := NewParams(1, 0.001); err != nil {
		t.Fatalf("NewParams(1, 0.001) unexpected error: %v", err)
	}
}

// columnStub is a minimal registry for planner tests.
type columnStub [][2]float32

func (c columnStub) CountInColumn(x, z, epsilon float32) int {
	count := 0
	for _, p := range c {
		if abs(p[0]-x) <= epsilon && abs(p[1]-z) <= epsilon {
			count++
		}
	}
	return count
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestNextStackHeightEmptyColumn(t *testing.T) {
	got := NextStackHeight(columnStub{}, 0, 0, 1, 0.001)
	if got != 0.5 {
		t.Errorf("empty column height = %v, want 0.5", got)
	}

	// Scales with grid size
	got = NextStackHeight(columnStub{}, 0, 0, 2, 0.001)
	if got != 1 {
		t.Errorf("empty column height (gridSize 2) = %v, want 1", got)
	}
}

func TestNextStackHeightCountsColumn(t *testing.T) {
	reg := columnStub{{0, 0}, {0, 0}, {3, 0}, {0, 3}}

	if got := NextStackHeight(reg, 0, 0, 1, 0.001); got != 2.5 {
		t.Errorf("height over 2-block column = %v, want 2.5", got)
	}
	if got := NextStackHeight(reg, 3, 0, 1, 0.001); got != 1.5 {
		t.Errorf("height over 1-block column = %v, want 1.5", got)
	}
	if got := NextStackHeight(reg, 5, 5, 1, 0.001); got != 0.5 {
		t.Errorf("height over empty column = %v, want 0.5", got)
	}
}

func TestNextStackHeightEpsilonTolerance(t *testing.T) {
	// Coordinates drifted inside epsilon still count as the same column.
	reg := columnStub{{1.0004, 2.0}, {0.9996, 1.9996}}

	if got := NextStackHeight(reg, 1, 2, 1, 0.001); got != 2.5 {
		t.Errorf("drifted column height = %v, want 2.5", got)
	}

	// Outside epsilon they do not.
	if got := NextStackHeight(reg, 1, 2, 1, 0.0001); got != 0.5 {
		t.Errorf("tight-epsilon column height = %v, want 0.5", got)
	}
}
