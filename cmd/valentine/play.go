package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/valentine-flappy/internal/core"
	"github.com/vovakirdan/valentine-flappy/internal/game"
	"github.com/vovakirdan/valentine-flappy/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Enter/Space  - Start
  Space/Up/W   - Flap
  P/Esc        - Pause
  G            - Open your gift (end screen)
  Y/O          - Answer
  R            - Play again (end screen)
  Ctrl+S       - Save a text screenshot to ~/.valentine/screenshots
  Q/Ctrl+C     - Quit

Examples:
  valentine play
  valentine play --difficulty hard
  valentine play --config ./my-valentine.yaml
  valentine play --log ./valentine.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write the game log to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig(newStderrLogger("valentine"))
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so the log goes to a file or nowhere.
	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		})
	}

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW, runtime.ScreenH = width, height
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	session := game.NewSession(cfg, runtime, game.WithLogger(logger))
	if err := tui.Run(session, runtime, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
