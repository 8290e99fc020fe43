package engine

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrEmptyBoard  = errors.New("cannot play on an empty board")
)
