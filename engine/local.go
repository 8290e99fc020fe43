package engine

import (
	"fmt"
	"io"
	"time"

	"chomp/experiments/metrics"
	"chomp/game"
	"chomp/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Engine struct {
	State  *game.GameState
	Agents [2]agent.Agent
	out    io.Writer
}

type Option func(e *Engine)

// WithOutput sets where the board and the played moves are printed.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

type Result struct {
	Game  metrics.GameMetric
	Moves []metrics.MoveMetric
}

// LocalEngine sets up a game where Agents[i] plays for state.Players[i].
func LocalEngine(state *game.GameState, agents [2]agent.Agent, options ...Option) *Engine {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("no agent for player %d", i))
		}
	}

	e := &Engine{
		State:  state,
		Agents: agents,
		out:    io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run alternates the agents until one of them eats the poison.
func (e *Engine) Run() (Result, error) {
	if e.State.Board.Len() == 0 {
		return Result{}, ErrEmptyBoard
	}

	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID).Logger()
	logger.Info().Msgf("%s is starting on a %d cell board", e.State.Player(), e.State.Board.Len())

	var moveMetrics []metrics.MoveMetric
	for step := 1; e.State.Winner() == ""; step++ {
		if err := e.State.Board.Render(e.out); err != nil {
			return Result{}, fmt.Errorf("failed to render board: %w", err)
		}

		player := e.State.Player()
		move, searchMetric, err := e.Agents[e.State.CurrentPlayer].FindMove(e.State.Copy())
		if err != nil {
			return Result{}, fmt.Errorf("%s could not move: %w", player, err)
		}
		if !e.State.Board.Contains(move.Row, move.Col) {
			return Result{}, fmt.Errorf("%w: %s played %v", ErrIllegalMove, player, move)
		}

		fmt.Fprintf(e.out, "%s chomps %v\n", player, move)
		logger.Debug().Uint64("position", uint64(e.State.Hash())).Msgf("step %d: %s played %v (forced win: %t, nodes: %d, took %s)",
			step, player, move, searchMetric.ForcedWin, searchMetric.Nodes, searchMetric.Duration)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		e.State = e.State.Play(move).(*game.GameState)
	}

	gameMetric.Winner = e.State.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	fmt.Fprintf(e.out, "%s ate the poison, %s wins\n", e.State.Opponent(), e.State.Winner())
	logger.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, gameMetric.Winner)

	return Result{Game: gameMetric, Moves: moveMetrics}, nil
}
