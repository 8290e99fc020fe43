package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

var ErrNotStaircase = errors.New("cells do not form a staircase")

// Board is the set of cells of the bar that have not been eaten yet.
// Occupied cells always form a staircase: if (r, c) is occupied then so is
// every (r', c') with r' <= r and c' <= c.
type Board struct {
	cells map[Move]struct{}
}

// NewBoard returns a full width x height bar.
func NewBoard(width, height int) *Board {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("negative board dimensions %dx%d", width, height))
	}

	cells := make(map[Move]struct{}, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cells[Move{Row: row, Col: col}] = struct{}{}
		}
	}
	return &Board{cells: cells}
}

// NewBoardFromCells rebuilds a board from a list of occupied cells, e.g. one
// received over the wire. Duplicates are ignored.
func NewBoardFromCells(cells []Move) (*Board, error) {
	b := &Board{cells: make(map[Move]struct{}, len(cells))}
	for _, cell := range cells {
		if cell.Row < 0 || cell.Col < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegativeCoordinate, cell)
		}
		b.cells[cell] = struct{}{}
	}
	if !b.IsStaircase() {
		return nil, ErrNotStaircase
	}
	return b, nil
}

// Contains reports whether the cell is still on the bar.
func (b *Board) Contains(row, col int) bool {
	_, ok := b.cells[Move{Row: row, Col: col}]
	return ok
}

// Chomp eats (row0, col0) together with every cell below and to the right of
// it. The cell must be occupied; chomping an eaten cell is a caller bug.
func (b *Board) Chomp(row0, col0 int) {
	if !b.Contains(row0, col0) {
		panic(fmt.Sprintf("chomp at unoccupied cell (%d, %d)", row0, col0))
	}

	for row := row0; b.Contains(row, 0); row++ {
		for col := col0; b.Contains(row, col); col++ {
			delete(b.cells, Move{Row: row, Col: col})
		}
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make(map[Move]struct{}, len(b.cells))
	for cell := range b.cells {
		cells[cell] = struct{}{}
	}
	return &Board{cells: cells}
}

func (b *Board) Len() int {
	return len(b.cells)
}

// Cells returns the occupied cells in row-major order.
func (b *Board) Cells() []Move {
	cells := lo.Keys(b.cells)
	slices.SortFunc(cells, func(x, y Move) int {
		if x.Row != y.Row {
			return x.Row - y.Row
		}
		return x.Col - y.Col
	})
	return cells
}

// Rows counts the rows that still hold at least one cell.
func (b *Board) Rows() int {
	row := 0
	for b.Contains(row, 0) {
		row++
	}
	return row
}

// RowLen counts the occupied cells of a row.
func (b *Board) RowLen(row int) int {
	col := 0
	for b.Contains(row, col) {
		col++
	}
	return col
}

// IsStaircase checks that every occupied cell has its upper and left
// neighbours occupied too.
func (b *Board) IsStaircase() bool {
	for cell := range b.cells {
		if cell.Row > 0 && !b.Contains(cell.Row-1, cell.Col) {
			return false
		}
		if cell.Col > 0 && !b.Contains(cell.Row, cell.Col-1) {
			return false
		}
	}
	return true
}

func (b *Board) Hash() StateHash {
	hasher := xxhash.New()
	b.writeProfile(hasher)
	return StateHash(hasher.Sum64())
}

// writeProfile writes the row lengths, which identify a staircase.
func (b *Board) writeProfile(w io.Writer) {
	rows := b.Rows()
	binary.Write(w, binary.LittleEndian, int64(rows))
	for row := 0; row < rows; row++ {
		binary.Write(w, binary.LittleEndian, int64(b.RowLen(row)))
	}
}
