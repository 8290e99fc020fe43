package game

import (
	"io"
	"strings"
)

const (
	PoisonMarker = '@'
	CellMarker   = '#'
)

// Render writes one line per row, one marker per cell, the poison cell
// marked apart from the rest.
func (b *Board) Render(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; b.Contains(row, 0); row++ {
		for col := 0; b.Contains(row, col); col++ {
			if row == 0 && col == 0 {
				sb.WriteRune(PoisonMarker)
			} else {
				sb.WriteRune(CellMarker)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
