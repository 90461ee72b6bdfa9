package duel

import "github.com/nmelnik/bayduel/internal/core"

// Cell classifies one terrain position on the bay map.
type Cell uint8

const (
	CellOpen Cell = iota
	CellWall
	CellObstacle
)

// The bay layout is fixed: a walled 20x10 basin with three rocks.
const (
	MapWidth  = 20
	MapHeight = 10
)

// rocks are the interior obstacle coordinates stamped after the wall ring.
var rocks = [...][2]int{
	{5, 3},
	{8, 5},
	{10, 6},
}

// bayBounds is the valid coordinate range of the map.
var bayBounds = core.NewRect(0, 0, MapWidth, MapHeight)

// Grid is the static terrain of the bay. Immutable after NewGrid.
type Grid struct {
	cells [MapHeight][MapWidth]Cell
}

// NewGrid builds the bay: boundary ring of walls, open water inside,
// rocks stamped on top.
func NewGrid() *Grid {
	g := &Grid{}
	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			if x == 0 || x == MapWidth-1 || y == 0 || y == MapHeight-1 {
				g.cells[y][x] = CellWall
			}
		}
	}
	for _, r := range rocks {
		g.cells[r[1]][r[0]] = CellObstacle
	}
	return g
}

// Classify returns the terrain at (x, y). Out-of-range positions
// classify as wall, so callers never need a separate bounds check.
func (g *Grid) Classify(x, y int) Cell {
	if !bayBounds.Contains(x, y) {
		return CellWall
	}
	return g.cells[y][x]
}

// IsBlocking reports whether (x, y) stops ships and projectiles.
func (g *Grid) IsBlocking(x, y int) bool {
	return g.Classify(x, y) != CellOpen
}

// Width returns the map width in cells.
func (g *Grid) Width() int { return MapWidth }

// Height returns the map height in cells.
func (g *Grid) Height() int { return MapHeight }
