// valentine is a Flappy-Bird-style valentine game for the terminal, a
// desktop window, or SSH.
//
// Usage:
//
//	valentine play           - Play in this terminal
//	valentine window         - Play in a desktop window
//	valentine serve          - Start SSH server for remote play
//	valentine config         - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/valentine-flappy/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "valentine",
	Short: "Flappy Valentine - catch hearts, open a gift",
	Long: `Flappy Valentine is a small side-scroller: flap through the pipes and
catch 5 hearts. Win or lose, there is a gift waiting at the end.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Difficulty options:
  easy   - Start at lowest difficulty, 5 lives
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, 2 lives
  fixed  - No progression, stays at config's initial level

Examples:
  valentine play
  valentine play --difficulty easy
  valentine window --seed 42
  valentine serve --ssh :2222
  valentine config > my-valentine.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config from the flags. A broken config
// file falls back to the built-in defaults with a warning; an unknown
// difficulty preset is an error.
func loadGameConfig(logger *log.Logger) (config.ValentineConfig, error) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.ValentineConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using built-in config", "error", err)
		cfg = config.DefaultValentineConfig()
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newStderrLogger returns the logger used outside the terminal UI.
func newStderrLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
