package searcher

import (
	"chomp/experiments/metrics"
	"chomp/game"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(n *Negamax)

// Negamax solves Chomp positions exhaustively and falls back to a random
// move when the player to move cannot force a win.
type Negamax struct {
	choose       Chooser
	newCollector func() metrics.Collector
}

func WithChooser(choose Chooser) Option {
	return func(n *Negamax) {
		if choose != nil {
			n.choose = choose
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(n *Negamax) {
		n.choose = NewUniformChooser(seed)
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.newCollector = metrics.NewCollector
	}
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{ // Default values
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(n)
	}
	if n.choose == nil {
		n.choose = NewUniformChooser(uint64(time.Now().UnixNano()))
	}
	return n
}

// FindMove returns a winning move if one exists, otherwise a random legal one.
func (n *Negamax) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	collector := n.newCollector()
	collector.Start()

	move, ok := solve(board, collector)
	collector.SetForcedWin(ok)
	if !ok {
		log.Debug().Msgf("no forced win on %d cells, playing randomly", board.Len())
		move = n.RandomMove(board)
	}

	return move, collector.Complete()
}

func (n *Negamax) FindForcedWin(board *game.Board) (game.Move, bool) {
	return FindForcedWin(board)
}

func (n *Negamax) RandomMove(board *game.Board) game.Move {
	return RandomMove(board, n.choose)
}

// FindForcedWin reports a move after which the opponent has no forced win,
// or false if the player to move loses against perfect play. The board is
// not modified.
func FindForcedWin(board *game.Board) (game.Move, bool) {
	return solve(board, metrics.NewDummyCollector())
}

// RandomMove picks among all occupied cells, the poison included.
func RandomMove(board *game.Board, choose Chooser) game.Move {
	if board.Len() == 0 {
		panic("random move on an empty board")
	}
	return choose(board.Cells())
}

func solve(board *game.Board, collector metrics.Collector) (game.Move, bool) {
	collector.AddNode()

	// Only the poison is left (or nothing at all)
	if board.Len() <= 1 {
		return game.Move{}, false
	}

	for _, move := range board.Cells() {
		if move.IsPoison() {
			continue
		}
		child := board.Clone()
		child.Chomp(move.Row, move.Col)
		if _, ok := solve(child, collector); !ok {
			return move, true
		}
	}
	return game.Move{}, false
}
