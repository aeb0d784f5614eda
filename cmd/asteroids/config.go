package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way play does (--config, then
~/.arcade/configs/asteroids.yaml, then ./configs/asteroids.yaml, then the
built-in defaults), applies --difficulty and prints the result as YAML.

The output is a complete config file and can be used as a starting point:

  asteroids config > ~/.arcade/configs/asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyAsteroidsPreset(&cfg, preset)
	}

	data, err := config.MarshalAsteroids(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
