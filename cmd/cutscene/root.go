package main

import (
	"github.com/spf13/cobra"

	"github.com/depeter/cutscene/internal/config"
)

// commandContext carries the settings shared by every command.
type commandContext struct {
	dataDir string
	debug   bool
	cfg     *config.Config
}

// config loads the configuration once and applies flag overrides.
func (c *commandContext) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if c.dataDir != "" {
		cfg.System.DataDir = c.dataDir
	}
	if c.debug {
		cfg.Debug.Enabled = true
	}
	c.cfg = cfg
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "cutscene",
		Short:         "Play the game's cut-scene movies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.config()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.dataDir, "data-dir", "d", "", "Game data directory")
	rootCmd.PersistentFlags().BoolVar(&ctx.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newPlayCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newResetCommand())

	return rootCmd
}
