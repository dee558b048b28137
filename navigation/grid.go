package navigation

import (
	"math"

	"github.com/1pavlov/vibecoded-kids-games/parameter"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// Cell is a discrete navigation grid coordinate
type Cell struct {
	X, Y int
}

// ToCell maps a world position to the nearest cell (halves round up)
func ToCell(p vmath.Vec2) Cell {
	return Cell{
		X: int(vmath.RoundHalfUp(p.X / parameter.CellSize)),
		Y: int(vmath.RoundHalfUp(p.Y / parameter.CellSize)),
	}
}

// ToWorld maps a cell back to its world position
func ToWorld(c Cell) vmath.Vec2 {
	return vmath.V(float64(c.X)*parameter.CellSize, float64(c.Y)*parameter.CellSize)
}

// ToWorldPath converts a cell path to world waypoints, reusing dst capacity
func ToWorldPath(dst []vmath.Vec2, cells []Cell) []vmath.Vec2 {
	dst = dst[:0]
	for _, c := range cells {
		dst = append(dst, ToWorld(c))
	}
	return dst
}

// GridSize returns the grid dimensions covering a field, rounded up
func GridSize(width, height float64) (cols, rows int) {
	return int(math.Ceil(width / parameter.CellSize)), int(math.Ceil(height / parameter.CellSize))
}

// Chebyshev is the 8-connected unit-cost distance between two cells
func Chebyshev(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}
