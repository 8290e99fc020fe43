package main

import (
	"errors"
	"fmt"
	"os"

	"chomp/communication/client"
	"chomp/config"
	"chomp/engine"
	"chomp/experiments"
	"chomp/experiments/metrics"
	"chomp/game"
	"chomp/meta"
	"chomp/player"
	"chomp/searcher"
	"chomp/searcher/agent"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := config.SetupLogging(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch cfg.Mode {
	case config.ModeServe:
		err = agent.StartAgentServer(cfg.Addr, agent.NewSolverAgent(createNegamax(cfg)), cfg.MaxCells)
	case config.ModeExperiment:
		err = runExperiments(cfg)
	default:
		err = play(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func play(cfg *config.Config) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "move (row col)> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer l.Close()

	human := player.NewHuman(l, l.Stderr())
	var computer agent.Agent = agent.NewSolverAgent(createNegamax(cfg))
	if cfg.Remote != "" {
		computer = client.NewRemoteAgent(cfg.Remote)
	}

	players := [2]string{meta.HUMAN, meta.COMPUTER}
	agents := [2]agent.Agent{human, computer}
	if !cfg.HumanFirst {
		players = [2]string{meta.COMPUTER, meta.HUMAN}
		agents = [2]agent.Agent{computer, human}
	}

	state := game.NewGameState(game.NewBoard(cfg.Width, cfg.Height), players)
	_, err = engine.LocalEngine(state, agents, engine.WithOutput(l.Stdout())).Run()
	if errors.Is(err, player.ErrInputClosed) {
		log.Info().Msg("bye")
		return nil
	}
	return err
}

func runExperiments(cfg *config.Config) error {
	writer, err := metrics.NewWriter(cfg.OutDir, "chomp")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if _, err := experiments.RunSolverScaling(experiments.DefaultSizes, writer); err != nil {
		return err
	}
	_, err = experiments.RunSelfPlay(experiments.SelfPlayConfig{
		Games:  cfg.Games,
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
	}, writer)
	if err != nil {
		return err
	}

	log.Info().Msgf("records written to %s", writer.Dir())
	return nil
}

func createNegamax(cfg *config.Config) *searcher.Negamax {
	opts := []searcher.Option{searcher.WithMetrics()}
	if cfg.Seed != 0 {
		opts = append(opts, searcher.WithSeed(cfg.Seed))
	}
	return searcher.NewNegamax(opts...)
}
