// Package app assembles the class-assistant bot: configuration, stores,
// dialog handlers, sweeper, keep-alive listener, and the Telegram runtime
// options consumed by the core cmd runner.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/m3rciful/classbot/bot/dialogs"
	"github.com/m3rciful/classbot/bot/files"
	"github.com/m3rciful/classbot/bot/store"
	"github.com/m3rciful/classbot/bot/sweeper"
	"github.com/m3rciful/classbot/core/bootstrap"
	corecmd "github.com/m3rciful/classbot/core/cmd"
	coretelegram "github.com/m3rciful/classbot/core/telegram"
	"github.com/m3rciful/classbot/core/telegram/router"
	"github.com/m3rciful/classbot/core/telegram/state"
)

// App carries the wired application.
type App struct {
	cfg      *Config
	stores   *store.Stores
	sessions state.Manager
	handlers *dialogs.Handlers
	sweep    *sweeper.Sweeper
	ping     *KeepAlive
}

// Bootstrap initializes the logger, opens the JSON stores, and wires the
// dialog machinery. It implements the cmd runner's Bootstrap hook.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	result, err := bootstrap.Run(bootstrap.Options[*store.Stores]{
		Config: cfg.CoreConfig(),
		OpenStores: func() (*store.Stores, error) {
			return store.Open(store.Options{
				Dir:              cfg.Data.Dir,
				UsersFile:        cfg.Data.UsersFile,
				ExamsFile:        cfg.Data.ExamsFile,
				FilesFile:        cfg.Data.FilesFile,
				MaxRetainedExams: cfg.Exams.MaxRetained,
			}), nil
		},
	})
	if err != nil {
		return nil, err
	}

	stores := result.Stores
	sessions := state.NewMemoryManager()
	storage := files.NewDiskStorage(cfg.Data.SubmissionsDir)
	handlers := dialogs.New(sessions, stores, storage, cfg.Core.Telegram.AdminID, cfg.DonateURL)

	return &App{
		cfg:      cfg,
		stores:   stores,
		sessions: sessions,
		handlers: handlers,
		sweep:    sweeper.New(stores.Exams, time.Duration(cfg.Exams.SweepIntervalMinutes)*time.Minute),
		ping:     NewKeepAlive(cfg.KeepAlive.Listen),
	}, nil
}

// TelegramRunOptions builds the runtime wiring for the core Telegram loop.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.handlers.Register(reg)
	reg.SetCallbackNotFound(a.handlers.UnknownCallback)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Core.Telegram.AdminID,
	})
	routes = append(routes, router.TextRoutes(a.sessions, reg, router.TextOptions{
		UnknownText: a.handlers.UnknownText,
		Document:    a.handlers.HandleDocument,
	})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		NotFound: a.handlers.UnknownCallback,
	}))

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, _ coretelegram.Runtime) error {
			go a.sweep.Run(ctx)
			a.ping.Start(ctx)
			return nil
		},
	}, nil
}
