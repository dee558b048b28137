package navigation

import (
	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
)

// OccupancyGrid is a per-plan boolean field of impassable cells, flat row-major
type OccupancyGrid struct {
	Width, Height int
	cells         []bool
}

// NewOccupancyGrid creates an all-free grid
func NewOccupancyGrid(width, height int) *OccupancyGrid {
	width = max(width, 0)
	height = max(height, 0)
	return &OccupancyGrid{
		Width:  width,
		Height: height,
		cells:  make([]bool, width*height),
	}
}

// InBounds reports whether c lies inside the grid
func (g *OccupancyGrid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// Blocked reports whether c is an obstacle; out-of-bounds cells are not obstacles,
// bounds are enforced separately by neighbour generation
func (g *OccupancyGrid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[c.Y*g.Width+c.X]
}

// Block marks c impassable, ignoring out-of-bounds cells
func (g *OccupancyGrid) Block(c Cell) {
	if g.InBounds(c) {
		g.cells[c.Y*g.Width+c.X] = true
	}
}

// BlockedCount returns the number of impassable cells
func (g *OccupancyGrid) BlockedCount() int {
	n := 0
	for _, b := range g.cells {
		if b {
			n++
		}
	}
	return n
}

// BuildObstacles derives a fresh occupancy grid from the active letters
// Each active letter blocks the square of ObstacleRadius cells around its own cell,
// except word letters matching the expected rune so the goal stays reachable
// hasExpected is false once the word is complete, in which case every active letter blocks
func BuildObstacles(letters []component.Letter, width, height int, expected rune, hasExpected bool) *OccupancyGrid {
	g := NewOccupancyGrid(width, height)

	for i := range letters {
		l := &letters[i]
		if !l.Active() {
			continue
		}
		if hasExpected && l.Matches(expected) {
			continue
		}

		center := ToCell(l.Pos)
		for dy := -parameter.ObstacleRadius; dy <= parameter.ObstacleRadius; dy++ {
			for dx := -parameter.ObstacleRadius; dx <= parameter.ObstacleRadius; dx++ {
				g.Block(Cell{X: center.X + dx, Y: center.Y + dy})
			}
		}
	}

	return g
}
