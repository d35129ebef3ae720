package grid

import (
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/unixpickle/model3d/model2d"
)

// reach is how many cells either side of a point we need to look at.
// With cellSize = radius / sqrt(2) anything within radius is at most
// ceil(sqrt(2)) = 2 cells away on each axis.
const reach = 2

// Grid is a uniform spatial hash over a rectangle that holds at most one
// point per cell.
// Cells are stored in a flat slice, indexed by x + y * width. A cell is
// never cleared once set.
type Grid struct {
	cells    []model2d.Coord
	occupied bitmap.Bitmap
	count    int

	width  int
	height int

	cellSize float64
	radius   float64

	min model2d.Coord // bottom left
	max model2d.Coord // top right
}

// Dimensions returns how many cells wide & high a Grid for the given
// radius & area would be. These are floats so callers can check for
// overflow before calling New; they may be +Inf.
func Dimensions(radius float64, min, max model2d.Coord) (float64, float64) {
	cellSize := radius / math.Sqrt2
	width := math.Max(math.Ceil((max.X-min.X)/cellSize), 1)
	height := math.Max(math.Ceil((max.Y-min.Y)/cellSize), 1)
	return width, height
}

// New returns a Grid covering min -> max for points at least radius apart.
// Nb. check Dimensions first, this allocates width * height cells.
func New(radius float64, min, max model2d.Coord) *Grid {
	cellSize := radius / math.Sqrt2

	w, h := Dimensions(radius, min, max)
	width, height := int(w), int(h)

	return &Grid{
		cells:    make([]model2d.Coord, width*height),
		occupied: bitmap.New(width * height),
		width:    width,
		height:   height,
		cellSize: cellSize,
		radius:   radius,
		min:      min,
		max:      max,
	}
}

// Width in cells
func (g *Grid) Width() int {
	return g.width
}

// Height in cells
func (g *Grid) Height() int {
	return g.height
}

// CellSize returns the side length of a single cell.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Len returns how many cells are occupied.
func (g *Grid) Len() int {
	return g.count
}

// Cell returns the column & row for pos. Points on or outside the boundary
// are not in any cell.
func (g *Grid) Cell(pos model2d.Coord) (int, int, bool) {
	if pos.X <= g.min.X || pos.X >= g.max.X || pos.Y <= g.min.Y || pos.Y >= g.max.Y {
		return 0, 0, false
	}

	col := int(math.Floor((pos.X - g.min.X) / g.cellSize))
	row := int(math.Floor((pos.Y - g.min.Y) / g.cellSize))

	// floating point can push a point a hair below max into the cell past the end
	if col >= g.width {
		col = g.width - 1
	}
	if row >= g.height {
		row = g.height - 1
	}

	return col, row, true
}

// index returns the flat index of pos
func (g *Grid) index(pos model2d.Coord) (int, bool) {
	col, row, ok := g.Cell(pos)
	if !ok {
		return 0, false
	}
	return col + row*g.width, true
}

// Insert writes pos into its cell & returns the cell index.
// Whatever was in the cell is overwritten, it's up to the caller to check
// CanInsert first.
func (g *Grid) Insert(pos model2d.Coord) (int, bool) {
	i, ok := g.index(pos)
	if !ok {
		return 0, false
	}
	if !g.occupied.Get(i) {
		g.occupied.Set(i, true)
		g.count++
	}
	g.cells[i] = pos
	return i, true
}

// Get returns the point held at index, if any.
func (g *Grid) Get(index int) (model2d.Coord, bool) {
	if index < 0 || index >= len(g.cells) || !g.occupied.Get(index) {
		return model2d.Coord{}, false
	}
	return g.cells[index], true
}

// CanInsert returns if pos is in bounds & not within radius of any point
// already in the grid.
func (g *Grid) CanInsert(pos model2d.Coord) bool {
	col, row, ok := g.Cell(pos)
	if !ok {
		return false
	}

	rsq := g.radius * g.radius

	for y := maxint(row-reach, 0); y <= minint(row+reach, g.height-1); y++ {
		for x := maxint(col-reach, 0); x <= minint(col+reach, g.width-1); x++ {
			other, ok := g.Get(x + y*g.width)
			if !ok {
				continue
			}
			d := other.Sub(pos)
			if d.Dot(d) <= rsq {
				return false
			}
		}
	}

	return true
}

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minint returns the lowest of two ints
func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}
