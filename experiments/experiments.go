package experiments

import (
	"fmt"

	"chomp/engine"
	"chomp/experiments/metrics"
	"chomp/game"
	"chomp/searcher"
	"chomp/searcher/agent"

	"github.com/rs/zerolog/log"
)

type BoardSize struct {
	Width  int
	Height int
}

// DefaultSizes stays small: the solver has no memoization and grows
// exponentially with the number of cells.
var DefaultSizes = []BoardSize{
	{Width: 1, Height: 1},
	{Width: 2, Height: 2},
	{Width: 3, Height: 2},
	{Width: 3, Height: 3},
	{Width: 4, Height: 2},
	{Width: 4, Height: 3},
}

// RunSolverScaling solves a fresh bar of every size and stores how much of
// the game tree each one took.
func RunSolverScaling(sizes []BoardSize, writer *metrics.Writer) ([]metrics.SolverRecord, error) {
	log.Info().Msgf("starting solver scaling experiment over %d sizes...", len(sizes))

	negamax := searcher.NewNegamax(searcher.WithMetrics())
	records := make([]metrics.SolverRecord, 0, len(sizes))
	for _, size := range sizes {
		board := game.NewBoard(size.Width, size.Height)
		if board.Len() == 0 {
			continue
		}

		move, metric := negamax.FindMove(board)
		record := metrics.SolverRecord{
			Width:     size.Width,
			Height:    size.Height,
			Cells:     board.Len(),
			ForcedWin: metric.ForcedWin,
			Nodes:     metric.Nodes,
			Duration:  metric.Duration,
		}
		if metric.ForcedWin {
			record.Move = move.String()
		}
		records = append(records, record)

		log.Info().Msgf("solved %dx%d in %s over %d nodes (forced win: %t)",
			size.Width, size.Height, metric.Duration, metric.Nodes, metric.ForcedWin)
	}

	if err := writer.WriteSolverRecords(records); err != nil {
		return nil, fmt.Errorf("failed to store solver records: %w", err)
	}
	log.Info().Msg("stored solver records")

	return records, nil
}

type SelfPlayConfig struct {
	Games  int
	Width  int
	Height int
	Seed   uint64
}

// RunSelfPlay pits the solver against a random player, alternating who
// starts, and stores game and move records.
func RunSelfPlay(config SelfPlayConfig, writer *metrics.Writer) ([]metrics.GameRecord, error) {
	log.Info().Msgf("starting self-play experiment with %d games on %dx%d...", config.Games, config.Width, config.Height)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for i := 0; i < config.Games; i++ {
		seed := config.Seed + uint64(i)
		solver := agent.NewSolverAgent(searcher.NewNegamax(searcher.WithSeed(seed), searcher.WithMetrics()))
		random := agent.NewRandomAgent(searcher.NewUniformChooser(seed))

		players := [2]string{"solver", "random"}
		agents := [2]agent.Agent{solver, random}
		if i%2 == 1 {
			players = [2]string{"random", "solver"}
			agents = [2]agent.Agent{random, solver}
		}

		state := game.NewGameState(game.NewBoard(config.Width, config.Height), players)
		result, err := engine.LocalEngine(state, agents).Run()
		if err != nil {
			return nil, fmt.Errorf("game %d failed: %w", i+1, err)
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			Width:      config.Width,
			Height:     config.Height,
			GameMetric: result.Game,
		})
		for _, mm := range result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       result.Game.ID,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, config.Games, result.Game.Winner)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return gameRecords, nil
}
