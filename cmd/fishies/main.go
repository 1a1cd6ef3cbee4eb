// fishies is Flappy Fish: steer a fish through scrolling pipes in your
// terminal.
//
// Usage:
//
//	fishies play             - Play in the current terminal
//	fishies serve            - Start SSH server for remote play
//	fishies config           - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a specific config file
//	--log-file <path>    - Write logs to a file (discarded otherwise)
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fishies",
	Short: "Flappy Fish - swim through the pipes in your terminal",
	Long: `Flappy Fish is a side-scrolling terminal game. Steer the fish up and
down through the gaps in the pipes. The game speeds up with every pipe;
swim into the red power-up to slow it back down.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  fishies play
  fishies play --foreground --seed 42
  fishies play --tea
  fishies serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: search ~/.fishies, ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the log level override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the given level.
func newLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// openLogFile returns the log destination for the game. The terminal is busy
// with the playfield, so without --log-file logs are discarded.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return f, func() { f.Close() }, nil
}
