package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/depeter/cutscene/internal/config"
	"github.com/depeter/cutscene/internal/movie"
)

type playOptions struct {
	fadeIn     bool
	fadeOut    bool
	stopMusic  bool
	pauseMusic bool
	save       bool
	music      string
}

func (o playOptions) flags() movie.Flags {
	var f movie.Flags
	if o.fadeIn {
		f |= movie.FlagFadeIn
	}
	if o.fadeOut {
		f |= movie.FlagFadeOut
	}
	if o.stopMusic {
		f |= movie.FlagStopMusic
	}
	if o.pauseMusic {
		f |= movie.FlagPauseMusic
	}
	return f
}

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play <movie>",
		Short: "Play a movie by name or catalogue number",
		Long: "Play a movie by name (\"boil3\"), file name (\"boil3.mve\") or\n" +
			"catalogue number. Clicking, pressing a key or closing the window skips it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := movie.Lookup(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.config()
			if err != nil {
				return err
			}
			return withRuntime(cmd.Context(), cfg, func(rt *runtime) error {
				return playMovie(rt, id, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.fadeIn, "fade-in", false, "Fade the screen to black before the movie")
	cmd.Flags().BoolVar(&opts.fadeOut, "fade-out", false, "Fade back to the game palette afterwards")
	cmd.Flags().BoolVar(&opts.stopMusic, "stop-music", false, "Stop background music")
	cmd.Flags().BoolVar(&opts.pauseMusic, "pause-music", false, "Pause background music and resume it afterwards")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Record the movie in the play history")
	cmd.Flags().StringVarP(&opts.music, "music", "m", "", "Background music track to start first")

	return cmd
}

// playMovie runs on the frontend's job goroutine.
func playMovie(rt *runtime, id movie.ID, opts playOptions) error {
	log := rt.Logger

	live := rt.Colors.Live()
	rt.Engine.Init(&live)
	rt.Orch.Init()

	var historyPath string
	if opts.save {
		path, err := config.HistoryPath()
		if err != nil {
			return err
		}
		historyPath = path
		if err := rt.Registry.LoadFile(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn("ignoring unreadable history", zap.String("path", path), zap.Error(err))
		}
	}

	if opts.music != "" {
		if err := rt.Mixer.PlayBackground(opts.music); err != nil {
			log.Warn("background music", zap.String("track", opts.music), zap.Error(err))
		}
	}

	if err := rt.Orch.Play(id, opts.flags()); err != nil {
		return err
	}

	if historyPath != "" {
		if err := rt.Registry.SaveFile(historyPath); err != nil {
			return fmt.Errorf("save history %s: %w", historyPath, err)
		}
	}
	return nil
}
