package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/depeter/cutscene/internal/config"
	"github.com/depeter/cutscene/internal/movie"
	"github.com/depeter/cutscene/internal/report"
)

// loadHistory reads the saved history. A missing file is an empty history.
func loadHistory() (*movie.Registry, string, error) {
	path, err := config.HistoryPath()
	if err != nil {
		return nil, "", err
	}
	reg := movie.NewRegistry()
	if err := reg.LoadFile(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, path, fmt.Errorf("load history %s: %w", path, err)
	}
	return reg, path, nil
}

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show which movies have been played",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := loadHistory()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.History(reg))
			return nil
		},
	}
}

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget every played movie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.HistoryPath()
			if err != nil {
				return err
			}
			reg := movie.NewRegistry()
			if err := reg.SaveFile(path); err != nil {
				return fmt.Errorf("save history %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Movie history cleared")
			return nil
		},
	}
}
