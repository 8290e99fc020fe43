package config

import (
	"fmt"
	"os"
	"strings"

	"chomp/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ModePlay       = "play"
	ModeServe      = "serve"
	ModeExperiment = "experiment"
)

type Config struct {
	Width      int
	Height     int
	Mode       string
	HumanFirst bool
	Seed       uint64
	LogLevel   string
	Addr       string
	MaxCells   int
	Remote     string
	OutDir     string
	Games      int
}

// Load reads flags, then CHOMP_* environment variables, then defaults.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("chomp", pflag.ContinueOnError)
	fs.Int("width", meta.DEFAULT_WIDTH, "number of columns of the bar")
	fs.Int("height", meta.DEFAULT_HEIGHT, "number of rows of the bar")
	fs.String("mode", ModePlay, "play, serve (agent server) or experiment")
	fs.Bool("human-first", true, "whether the human moves first")
	fs.Uint64("seed", 0, "seed for the computer's random moves, 0 picks one from the clock")
	fs.String("log-level", "info", "debug, info, warn, error or disabled")
	fs.String("addr", meta.DEFAULT_ADDR, "address the agent server listens on")
	fs.Int("max-cells", meta.DEFAULT_MAX_CELLS, "largest board, in cells, the agent server will solve")
	fs.String("remote", "", "URL of an agent server to play against instead of the local solver")
	fs.String("out-dir", meta.DEFAULT_OUT_DIR, "directory for experiment records")
	fs.Int("games", meta.DEFAULT_GAMES, "number of self-play games in experiment mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("chomp")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := &Config{
		Width:      v.GetInt("width"),
		Height:     v.GetInt("height"),
		Mode:       v.GetString("mode"),
		HumanFirst: v.GetBool("human-first"),
		Seed:       v.GetUint64("seed"),
		LogLevel:   v.GetString("log-level"),
		Addr:       v.GetString("addr"),
		MaxCells:   v.GetInt("max-cells"),
		Remote:     v.GetString("remote"),
		OutDir:     v.GetString("out-dir"),
		Games:      v.GetInt("games"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	switch c.Mode {
	case ModePlay, ModeServe, ModeExperiment:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.MaxCells < 1 {
		return fmt.Errorf("max cells must be positive, got %d", c.MaxCells)
	}
	if c.Games < 0 {
		return fmt.Errorf("games must not be negative, got %d", c.Games)
	}
	return nil
}

// SetupLogging points the global zerolog logger at stderr.
func SetupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}
