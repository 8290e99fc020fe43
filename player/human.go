package player

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"chomp/experiments/metrics"
	"chomp/game"

	"github.com/chzyer/readline"
)

// ErrInputClosed is returned once the human stops providing input.
var ErrInputClosed = errors.New("input closed")

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// Human reads moves typed as "row col". Bad lines are reported and the
// prompt repeats; they never reach the engine.
type Human struct {
	in  LineReader
	out io.Writer
}

func NewHuman(in LineReader, out io.Writer) *Human {
	return &Human{in: in, out: out}
}

func (h *Human) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	for {
		line, err := h.in.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return game.Move{}, metrics.SearchMetric{}, ErrInputClosed
		}
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
		}

		line = strings.TrimSpace(line)
		move, err := game.ParseMove(line)
		if err != nil {
			fmt.Fprintf(h.out, "bad move %q: %v\n", line, err)
			continue
		}
		if !state.Board.Contains(move.Row, move.Col) {
			fmt.Fprintf(h.out, "illegal move %v: no such cell left\n", move)
			continue
		}

		return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
	}
}
