// Package breakout implements the breakout simulation: a walled field of
// blocks, a diagonally moving ball and a paddle, advanced one tick at a time.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Cell is the content of one field position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellBlock
	CellDeadZone
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellBlock:
		return "block"
	case CellDeadZone:
		return "dead-zone"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Default block region: rows 2..7 across every interior column.
const (
	DefaultBlockTop  = 2
	DefaultBlockRows = 6
)

// Field is a rectangular grid of cells with inclusive extents: valid
// coordinates are 0..W and 0..H. The perimeter x=0, x=W, y=0 is wall, the
// interior of row H is dead-zone and a rectangle of rows near the top starts
// as blocks.
type Field struct {
	width  int
	height int
	cells  [][]Cell // [x][y]
	blocks int      // Always equals the number of CellBlock cells
}

// FieldOption customizes field construction.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	blocks    core.Rect
	hasBlocks bool
	parity    int // -1 = every cell in the region
}

// WithBlockRegion replaces the default block rectangle.
// The region is clipped to the field interior above the dead-zone.
func WithBlockRegion(r core.Rect) FieldOption {
	return func(o *fieldOptions) {
		o.blocks = r
		o.hasBlocks = true
	}
}

// WithBlockParity keeps only region cells where (x+y)%2 == parity. A ball
// moving diagonally never changes the parity of x+y, so this places exactly
// the blocks a ball with that parity can reach.
func WithBlockParity(parity int) FieldOption {
	return func(o *fieldOptions) {
		o.parity = parity & 1
	}
}

// DefaultBlockRegion returns the block rectangle used when no region is given.
func DefaultBlockRegion(width int) core.Rect {
	return core.NewRect(1, DefaultBlockTop, width-1, DefaultBlockRows)
}

// NewField builds a field with extents width (W) and height (H).
// Construction is deterministic.
func NewField(width, height int, opts ...FieldOption) *Field {
	o := fieldOptions{parity: -1}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasBlocks {
		o.blocks = DefaultBlockRegion(width)
	}

	width = core.Max(width, 1)
	height = core.Max(height, 1)

	f := &Field{
		width:  width,
		height: height,
		cells:  make([][]Cell, width+1),
	}
	for x := range f.cells {
		f.cells[x] = make([]Cell, height+1)
	}

	// Side walls span the full height, including the bottom corners
	for y := 0; y <= height; y++ {
		f.cells[0][y] = CellWall
		f.cells[width][y] = CellWall
	}
	for x := 1; x < width; x++ {
		f.cells[x][0] = CellWall
		f.cells[x][height] = CellDeadZone
	}

	// Blocks may only occupy the interior between the top wall and the dead-zone
	interior := core.NewRect(1, 1, width-1, height-1)
	region := o.blocks.Intersect(interior)
	if region.Empty() {
		return f
	}
	for x := region.X; x < region.Right(); x++ {
		for y := region.Y; y < region.Bottom(); y++ {
			if o.parity >= 0 && (x+y)&1 != o.parity {
				continue
			}
			f.cells[x][y] = CellBlock
			f.blocks++
		}
	}

	return f
}

// Width returns the W extent (largest valid x).
func (f *Field) Width() int {
	return f.width
}

// Height returns the H extent (largest valid y).
func (f *Field) Height() int {
	return f.height
}

// InBounds reports whether (x, y) is a valid coordinate.
func (f *Field) InBounds(x, y int) bool {
	return core.NewRect(0, 0, f.width+1, f.height+1).Contains(x, y)
}

// CellAt returns the content at (x, y).
func (f *Field) CellAt(x, y int) (Cell, error) {
	if !f.InBounds(x, y) {
		return CellEmpty, fmt.Errorf("cell (%d, %d) outside %dx%d field: %w", x, y, f.width, f.height, ErrOutOfBounds)
	}
	return f.cells[x][y], nil
}

// ClearBlockAt turns the block at (x, y) into empty space and decrements the
// live block count. Any other cell is left untouched and reported as an error.
func (f *Field) ClearBlockAt(x, y int) error {
	cell, err := f.CellAt(x, y)
	if err != nil {
		return err
	}
	if cell != CellBlock {
		return fmt.Errorf("clear (%d, %d) holding %s: %w", x, y, cell, ErrInvalidClear)
	}
	f.cells[x][y] = CellEmpty
	f.blocks--
	return nil
}

// RemainingBlocks returns the number of blocks left in O(1).
func (f *Field) RemainingBlocks() int {
	return f.blocks
}

// countBlocks scans the grid. Used by snapshots and tests to cross-check the
// live counter.
func (f *Field) countBlocks() int {
	n := 0
	for x := range f.cells {
		for _, c := range f.cells[x] {
			if c == CellBlock {
				n++
			}
		}
	}
	return n
}
