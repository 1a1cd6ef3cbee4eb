package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/games/fishies"
	"github.com/vovakirdan/flappy-fish/internal/platform/style"
	"github.com/vovakirdan/flappy-fish/internal/platform/terminal"
	"github.com/vovakirdan/flappy-fish/internal/platform/tui"
)

var (
	flagForeground bool
	flagTea        bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Fish",
	Long: `Start a game in the current terminal.

Controls (defaults, see 'fishies config'):
  w / s      - Move up / down
  b          - Toggle background processing (pause: the game then
               advances one step per key)
  o          - Command mode: type 'resume' or 'quit' and press Enter
  q / Ctrl+C - Quit

The terminal must be at least 30 rows by 50 columns.

Examples:
  fishies play
  fishies play --foreground
  fishies play --seed 42 --log-file fishies.log --log-level debug
  fishies play --tea`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagForeground, "foreground", false, "Start with background processing off")
	playCmd.Flags().BoolVar(&flagTea, "tea", false, "Use the Bubble Tea frontend instead of the raw terminal")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(logOut, cfg.Log.Level, "fishies")
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := fishies.OptionsFromConfig(cfg, core.RuntimeConfig{
		Seed:       flagSeed,
		Foreground: flagForeground,
	})
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.Logger = logger
	sess := fishies.NewSession(opts)

	// Run the game
	var runErr error
	if flagTea {
		runErr = tui.Run(sess)
	} else {
		runErr = playRaw(sess)
	}
	closeLog()

	if runErr != nil {
		if errors.Is(runErr, fishies.ErrTerminalTooSmall) {
			fmt.Fprintln(os.Stderr, "Terminal window must be at least 30 by 50 to run this game")
		} else {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		os.Exit(1)
	}

	fmt.Println(sess.Summary())
}

// playRaw runs the session on the raw terminal. The terminal is restored on
// every exit path, panics included.
func playRaw(sess *fishies.Session) (err error) {
	t, err := terminal.Open()
	if err != nil {
		return err
	}
	painter := terminal.NewPainter(t.Out(), style.NewPalette(lipgloss.NewRenderer(t.Out())))

	defer func() {
		//nolint:errcheck // Best-effort, the terminal is going away
		painter.Reset()
		if closeErr := t.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return sess.Run(t, painter)
}
