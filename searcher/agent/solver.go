package agent

import (
	"chomp/experiments/metrics"
	"chomp/game"
	"chomp/searcher"
)

type solverAgent struct {
	negamax *searcher.Negamax
}

// NewSolverAgent returns the computer player: a forced win when there is
// one, a random legal move otherwise.
func NewSolverAgent(negamax *searcher.Negamax) Agent {
	return solverAgent{negamax: negamax}
}

func (a solverAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	move, metric := a.negamax.FindMove(state.Board)
	return move, metric, nil
}

type randomAgent struct {
	choose searcher.Chooser
}

// NewRandomAgent plays uniformly random legal moves. Used as a baseline opponent.
func NewRandomAgent(choose searcher.Chooser) Agent {
	return randomAgent{choose: choose}
}

func (a randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	return searcher.RandomMove(state.Board, a.choose), metrics.SearchMetric{}, nil
}
