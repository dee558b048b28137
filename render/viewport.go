package render

import (
	"math"

	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// Terminal layout
const (
	TerminalCellWidth  = 8.0  // World units per terminal column
	TerminalCellHeight = 16.0 // World units per terminal row
	HUDRows            = 2    // Word line and hint line above the field
)

// Viewport maps world units to terminal cells below the HUD
type Viewport struct {
	CellW, CellH float64
	Top          int // First screen row of the field
	Cols, Rows   int // Field extent in cells
}

// NewViewport fits the field to a screen, leaving the HUD rows and an optional status row
func NewViewport(screenW, screenH int, statusRow bool) Viewport {
	rows := screenH - HUDRows
	if statusRow {
		rows--
	}
	return Viewport{
		CellW: TerminalCellWidth,
		CellH: TerminalCellHeight,
		Top:   HUDRows,
		Cols:  max(screenW, 1),
		Rows:  max(rows, 1),
	}
}

// FieldSize is the world extent covered by the field cells
func (v Viewport) FieldSize() (w, h float64) {
	return float64(v.Cols) * v.CellW, float64(v.Rows) * v.CellH
}

// ToScreen returns the cell containing p
func (v Viewport) ToScreen(p vmath.Vec2) (x, y int) {
	return int(math.Floor(p.X / v.CellW)), v.Top + int(math.Floor(p.Y/v.CellH))
}

// ToWorld returns the world position at the center of a screen cell
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	return vmath.V((float64(x)+0.5)*v.CellW, (float64(y-v.Top)+0.5)*v.CellH)
}

// InField reports whether a screen cell lies inside the field area
func (v Viewport) InField(x, y int) bool {
	return x >= 0 && x < v.Cols && y >= v.Top && y < v.Top+v.Rows
}
