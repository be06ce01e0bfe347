package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/depeter/cutscene/internal/app"
	"github.com/depeter/cutscene/internal/assets"
	"github.com/depeter/cutscene/internal/config"
	"github.com/depeter/cutscene/internal/cycle"
	"github.com/depeter/cutscene/internal/logging"
	"github.com/depeter/cutscene/internal/movie"
	"github.com/depeter/cutscene/internal/palette"
	"github.com/depeter/cutscene/internal/player"
	"github.com/depeter/cutscene/internal/sound"
)

// runtime is the wired object graph a playback command works with.
type runtime struct {
	Logger   *zap.Logger
	Frontend *app.Frontend
	Mixer    *sound.Mixer
	Engine   *palette.Engine
	Colors   *palette.ColorMap
	Orch     *movie.Orchestrator
	Registry *movie.Registry
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Debug.Enabled)
}

func newAssets(cfg *config.Config, log *zap.Logger) *assets.FS {
	return assets.New(cfg.System.DataDir, log.Named("assets"))
}

func newFrontend(cfg *config.Config, log *zap.Logger) *app.Frontend {
	return app.NewFrontend(cfg, log.Named("app"))
}

func newMixer(cfg *config.Config, fs *assets.FS, front *app.Frontend, log *zap.Logger) *sound.Mixer {
	m := sound.New(cfg.Sound, fs, sound.WithLogger(log.Named("sound")))
	front.AddTicker(app.TickerFunc(func(time.Time) { m.Update() }))
	return m
}

func newPaletteEngine(front *app.Frontend, m *sound.Mixer, log *zap.Logger) *palette.Engine {
	return palette.NewEngine(front, m, palette.WithLogger(log.Named("palette")))
}

func newColorMap(fs *assets.FS, log *zap.Logger) *palette.ColorMap {
	return palette.NewColorMap(fs, log.Named("colors"))
}

func newCycler(cfg *config.Config, engine *palette.Engine, front *app.Frontend, log *zap.Logger) *cycle.Cycler {
	c := cycle.New(engine, cfg.System.ColorCycling, log.Named("cycle"))
	engine.AttachCycler(c)
	front.AddTicker(c)
	return c
}

func newPlayer(lc fx.Lifecycle, cfg *config.Config, fs *assets.FS, log *zap.Logger) (*player.Player, error) {
	p, err := player.New(cfg, fs, log.Named("player"))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			p.Destroy()
			return nil
		},
	})
	return p, nil
}

type orchestratorParams struct {
	fx.In

	Config   *config.Config
	Logger   *zap.Logger
	Frontend *app.Frontend
	Assets   *assets.FS
	Mixer    *sound.Mixer
	Engine   *palette.Engine
	Colors   *palette.ColorMap
	Cycler   *cycle.Cycler
	Player   *player.Player
	Registry *movie.Registry
}

func newOrchestrator(p orchestratorParams) *movie.Orchestrator {
	return movie.NewOrchestrator(movie.Deps{
		Player:   p.Player,
		Mixer:    p.Mixer,
		Surfaces: p.Frontend.Surfaces(),
		Input:    p.Frontend,
		Pump:     p.Frontend,
		Assets:   p.Assets,
		Settings: p.Config,
		Text:     p.Frontend,
		Colors:   p.Colors,
		Fader:    p.Engine,
		Cycler:   p.Cycler,
		Registry: p.Registry,
		Logger:   p.Logger.Named("movie"),
	})
}

func registerHooks(lc fx.Lifecycle, log *zap.Logger, m *sound.Mixer, colors *palette.ColorMap) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := m.Init(); err != nil {
				log.Warn("continuing without audio", zap.Error(err))
			}
			if err := colors.LoadColorTable(movie.LivePalettePath); err != nil {
				log.Warn("live color table unavailable", zap.Error(err))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := m.Close()
			// Syncing a console logger fails on some terminals.
			_ = log.Sync()
			return err
		},
	})
}

// newApp builds the dependency graph and fills rt.
func newApp(cfg *config.Config, rt *runtime) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx").WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
		fx.Provide(
			newLogger,
			newAssets,
			newFrontend,
			newMixer,
			newPaletteEngine,
			newColorMap,
			newCycler,
			newPlayer,
			movie.NewRegistry,
			newOrchestrator,
		),
		fx.Invoke(registerHooks),
		fx.Populate(
			&rt.Logger,
			&rt.Frontend,
			&rt.Mixer,
			&rt.Engine,
			&rt.Colors,
			&rt.Orch,
			&rt.Registry,
		),
	)
}

// withRuntime starts the graph, runs job inside the frontend window on the
// calling goroutine and stops the graph once the window closes.
func withRuntime(ctx context.Context, cfg *config.Config, job func(rt *runtime) error) error {
	var rt runtime
	fxApp := newApp(cfg, &rt)
	if err := fxApp.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, fx.DefaultTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return err
	}

	runErr := rt.Frontend.Run(func() error { return job(&rt) })

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancelStop()
	return errors.Join(runErr, fxApp.Stop(stopCtx))
}
