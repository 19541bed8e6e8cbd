package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/valentine-flappy/internal/core"
	"github.com/vovakirdan/valentine-flappy/internal/game"
	"github.com/vovakirdan/valentine-flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window, drawn at full resolution.

Controls:
  Click/Space  - Start, then flap
  Up/W         - Flap
  P            - Pause
  G/Enter      - Open your gift (end screen)
  Y/O          - Answer
  R            - Play again (end screen)
  Q/Esc        - Quit

Examples:
  valentine window
  valentine window --fps 30 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := newStderrLogger("valentine")

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW, runtime.ScreenH = int(cfg.World.Width), int(cfg.World.Height)
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	session := game.NewSession(cfg, runtime, game.WithLogger(logger))
	return window.Run(session, flagFPS)
}
