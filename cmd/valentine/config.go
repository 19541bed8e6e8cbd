package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/valentine-flappy/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after applying the config search path
and --difficulty. Save it to ~/.valentine/configs/valentine.yaml and edit
it to change the game.

Examples:
  valentine config
  valentine config --difficulty hard
  valentine config --default > valentine.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaultConfig {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig(newStderrLogger("valentine"))
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
