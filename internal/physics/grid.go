package physics

import "math"

// RectGrid is a uniform grid for broad-phase point queries against
// rectangles. Each rectangle is registered in every cell it overlaps, so a
// point query only has to look at the single cell containing the point.
//
// Items within a cell are kept in insertion order. Inserting rectangles in
// ascending index order therefore makes QueryPoint visit candidates in that
// same order, which is what first-match-wins lookups rely on.
type RectGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of rectangles overlapping a grid cell.
// The slice is reused across Clear calls to avoid allocations.
type gridCell struct {
	items []int
}

// NewRectGrid creates a grid covering the given world dimensions.
// Rectangles and points outside the world are clamped onto the edge cells.
func NewRectGrid(worldW, worldH, cellSize float64) *RectGrid {
	cols := int(math.Ceil(worldW / cellSize))
	rows := int(math.Ceil(worldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	cells := make([]gridCell, cols*rows)
	return &RectGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       cells,
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *RectGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert registers index in every cell overlapped by r.
// An inverted rectangle (Min > Max on either axis) is not inserted.
func (g *RectGrid) Insert(r Rect, index int) {
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return
	}
	c0, r0 := g.posToCell(r.Min.X, r.Min.Y)
	c1, r1 := g.posToCell(r.Max.X, r.Max.Y)
	for row := r0; row <= r1; row++ {
		rowOffset := row * g.cols
		for col := c0; col <= c1; col++ {
			idx := rowOffset + col
			g.cells[idx].items = append(g.cells[idx].items, index)
		}
	}
}

// QueryPoint calls fn for each item registered in the cell containing p.
// If fn returns true, iteration stops early (useful for "find first" queries).
func (g *RectGrid) QueryPoint(p Vec, fn func(index int) bool) {
	col, row := g.posToCell(p.X, p.Y)
	for _, itemIdx := range g.cells[row*g.cols+col].items {
		if fn(itemIdx) {
			return
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to valid range to handle out-of-world and NaN coordinates.
func (g *RectGrid) posToCell(x, y float64) (col, row int) {
	col = clampCell(x*g.invCellSize, g.cols)
	row = clampCell(y*g.invCellSize, g.rows)
	return col, row
}

func clampCell(f float64, n int) int {
	switch {
	case !(f >= 0): // negative or NaN
		return 0
	case f >= float64(n):
		return n - 1
	default:
		return int(f)
	}
}
