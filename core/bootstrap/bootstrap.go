package bootstrap

import (
	"fmt"

	coreconfig "github.com/m3rciful/classbot/core/config"
	"github.com/m3rciful/classbot/core/logger"
)

// Options control the generic bootstrap pipeline shared between bots.
// The type parameter S carries whatever persistent state the application
// opens (for this bot: the three JSON collection stores).
type Options[S any] struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error
	OpenStores func() (S, error)
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result[S any] struct {
	Stores S
}

// Run initializes the logger and opens the application stores.
func Run[S any](opts Options[S]) (*Result[S], error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	if opts.OpenStores == nil {
		return nil, fmt.Errorf("bootstrap: OpenStores is required")
	}
	stores, err := opts.OpenStores()
	if err != nil {
		return nil, fmt.Errorf("bootstrap: store initialization failed: %w", err)
	}

	return &Result[S]{Stores: stores}, nil
}
