package render

import (
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/vmath"
)

// cellAspect is the height of a terminal cell relative to its width
const cellAspect = 2.0

// Viewport maps world units onto a rectangle of terminal cells, preserving aspect
type Viewport struct {
	X, Y, Cols, Rows int
	unit             float64 // World units per column
	offX, offY       float64 // Letterbox margin in cells
}

// NewViewport fits bounds into the cell rectangle at (x, y) sized cols by rows
func NewViewport(bounds physics.Bounds, x, y, cols, rows int) Viewport {
	v := Viewport{X: x, Y: y, Cols: max(cols, 1), Rows: max(rows, 1)}
	v.unit = max(bounds.Width/float64(v.Cols), bounds.Height/(float64(v.Rows)*cellAspect))
	v.offX = (float64(v.Cols) - bounds.Width/v.unit) / 2
	v.offY = (float64(v.Rows) - bounds.Height/(v.unit*cellAspect)) / 2
	return v
}

// CellF returns fractional cell coordinates for a world point
func (v Viewport) CellF(p vmath.Vec2) (float64, float64) {
	return float64(v.X) + v.offX + p.X/v.unit, float64(v.Y) + v.offY + p.Y/(v.unit*cellAspect)
}

// Cell returns the cell containing a world point
func (v Viewport) Cell(p vmath.Vec2) (int, int) {
	cx, cy := v.CellF(p)
	return int(cx), int(cy)
}

// World returns the world point at the center of a cell
func (v Viewport) World(cx, cy int) vmath.Vec2 {
	return vmath.V(
		(float64(cx-v.X)+0.5-v.offX)*v.unit,
		(float64(cy-v.Y)+0.5-v.offY)*v.unit*cellAspect,
	)
}

// Contains reports whether the cell lies inside the viewport rectangle
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.X && cx < v.X+v.Cols && cy >= v.Y && cy < v.Y+v.Rows
}

// Span returns a world radius in columns and rows
func (v Viewport) Span(r float64) (float64, float64) {
	return r / v.unit, r / (v.unit * cellAspect)
}

// Line visits every cell crossed by the segment a-b
func (v Viewport) Line(a, b vmath.Vec2, fn func(cx, cy int)) {
	ax, ay := v.CellF(a)
	bx, by := v.CellF(b)
	t := vmath.NewGridTraverser(vmath.FromFloat(ax), vmath.FromFloat(ay), vmath.FromFloat(bx), vmath.FromFloat(by))
	for t.Next() {
		fn(t.Pos())
	}
}
