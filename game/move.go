package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Move names the pivot cell of a chomp.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Poison is the cell whose removal loses the game.
var Poison = Move{Row: 0, Col: 0}

var (
	ErrMalformedMove      = errors.New("move must be two whitespace-separated integers")
	ErrNegativeCoordinate = errors.New("move coordinates must be non-negative")
)

func (m Move) IsPoison() bool {
	return m == Poison
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// ParseMove reads a "row col" line. It does not check the move against a board.
func ParseMove(line string) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: got %d fields", ErrMalformedMove, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad row %q", ErrMalformedMove, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad column %q", ErrMalformedMove, fields[1])
	}
	if row < 0 || col < 0 {
		return Move{}, fmt.Errorf("%w: (%d, %d)", ErrNegativeCoordinate, row, col)
	}

	return Move{Row: row, Col: col}, nil
}
