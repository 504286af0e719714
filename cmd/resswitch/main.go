package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/genricoloni/resswitch/internal/config"
	"github.com/genricoloni/resswitch/internal/display"
	"github.com/genricoloni/resswitch/internal/domain"
	"github.com/genricoloni/resswitch/internal/editor"
	"github.com/genricoloni/resswitch/internal/engine"
	"github.com/genricoloni/resswitch/internal/menu"
	"github.com/genricoloni/resswitch/internal/notify"
	"github.com/genricoloni/resswitch/internal/presence"
	"github.com/genricoloni/resswitch/internal/settings"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// AppOptions is the full dependency graph, shared with the graph test
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		fx.Annotate(display.NewController, fx.As(new(domain.DisplayController))),
		fx.Annotate(presence.NewOracle, fx.As(new(domain.ProcessOracle))),
		fx.Annotate(settings.NewFileStore, fx.As(new(domain.SettingsStore))),
		notify.NewNotifier,
		engine.NewEngine,
		editor.New,
		menu.New,
	),
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// Either a signal or the menu finishing ends the program
	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates the zap logger. RESSWITCH_DEBUG switches to the
// development configuration.
func newLogger() (*zap.Logger, error) {
	if debug, _ := strconv.ParseBool(os.Getenv("RESSWITCH_DEBUG")); debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// registerHooks runs the menu for the lifetime of the app. Stopping the app
// cancels the menu (and the monitor loop, which restores the default mode)
// before the display connection is released.
func registerHooks(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *zap.Logger, m *menu.Menu, eng *engine.Engine) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("resswitch started")
			go func() {
				defer close(done)
				if err := m.Run(runCtx); err != nil {
					logger.Error("Menu exited with error", zap.Error(err))
				}
				if err := shutdowner.Shutdown(); err != nil {
					logger.Debug("Shutdown already in progress", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			cancel()
			err := m.Close()

			select {
			case <-done:
			case <-ctx.Done():
				logger.Warn("Timed out waiting for the monitor loop to stop")
			}

			return multierr.Append(err, eng.Close())
		},
	})
}
