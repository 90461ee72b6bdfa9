package duel

import "testing"

func TestGridBoundaryRing(t *testing.T) {
	g := NewGrid()

	for x := 0; x < MapWidth; x++ {
		if g.Classify(x, 0) != CellWall {
			t.Errorf("Top row should be wall at x=%d", x)
		}
		if g.Classify(x, MapHeight-1) != CellWall {
			t.Errorf("Bottom row should be wall at x=%d", x)
		}
	}
	for y := 0; y < MapHeight; y++ {
		if g.Classify(0, y) != CellWall {
			t.Errorf("Left column should be wall at y=%d", y)
		}
		if g.Classify(MapWidth-1, y) != CellWall {
			t.Errorf("Right column should be wall at y=%d", y)
		}
	}
}

func TestGridObstacles(t *testing.T) {
	g := NewGrid()

	for _, r := range rocks {
		if g.Classify(r[0], r[1]) != CellObstacle {
			t.Errorf("Expected obstacle at (%d, %d)", r[0], r[1])
		}
	}

	// Spawn cells must be open water
	for _, sp := range spawns {
		if g.Classify(sp[0], sp[1]) != CellOpen {
			t.Errorf("Spawn (%d, %d) should be open", sp[0], sp[1])
		}
	}
}

func TestGridOutOfRangeIsWall(t *testing.T) {
	g := NewGrid()

	points := [][2]int{
		{-1, 5}, {MapWidth, 5}, {5, -1}, {5, MapHeight}, {-10, -10}, {100, 100},
	}
	for _, p := range points {
		if g.Classify(p[0], p[1]) != CellWall {
			t.Errorf("Classify(%d, %d) should be wall out of range", p[0], p[1])
		}
		if !g.IsBlocking(p[0], p[1]) {
			t.Errorf("IsBlocking(%d, %d) should be true out of range", p[0], p[1])
		}
	}
}

func TestGridIsBlocking(t *testing.T) {
	g := NewGrid()

	tests := []struct {
		name     string
		x, y     int
		blocking bool
	}{
		{"open water", 2, 2, false},
		{"wall", 0, 0, true},
		{"obstacle", 5, 3, true},
		{"open next to obstacle", 5, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsBlocking(tc.x, tc.y); got != tc.blocking {
				t.Errorf("IsBlocking(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.blocking)
			}
		})
	}
}
