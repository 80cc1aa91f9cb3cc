package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/lvforge/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and the
// widget type registry loaded from the embedded catalog.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	// The catalog is embedded; a load failure means the shipped manifest is
	// broken, which is a programmer error, so we panic.
	reg, err := registry.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load widget catalog: %w", err))
	}
	logger.Debug("Widget catalog loaded.", "types", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the application's widget type registry. This is
// primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
