package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/lvforge/internal/compiler"
	"github.com/specialistvlad/lvforge/internal/ctxlog"
	"github.com/specialistvlad/lvforge/internal/projfile"
	"github.com/specialistvlad/lvforge/internal/report"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	data, err := os.ReadFile(cfg.ProjectPath)
	if err != nil {
		return fmt.Errorf("failed to read project file: %w", err)
	}
	project, err := projfile.Load(data, a.registry)
	if err != nil {
		return fmt.Errorf("failed to load project %s: %w", cfg.ProjectPath, err)
	}
	a.logger.Debug("Project loaded.",
		"pages", len(project.Pages()),
		"widgets", project.WidgetCount(),
	)

	if cfg.ValidateOnly {
		if errs := compiler.Validate(project); len(errs) > 0 {
			return errs
		}
		a.logger.Info("Project is valid.", "path", cfg.ProjectPath)
	} else {
		result, errs := compiler.Compile(project)
		if len(errs) > 0 {
			return errs
		}
		for _, warning := range result.Warnings {
			a.logger.Warn(warning)
		}
		if err := a.writeOutput(ctx, cfg.OutputPath, result.Document); err != nil {
			return err
		}
	}

	if cfg.Summary {
		fmt.Fprint(a.outW, report.Render(project))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// writeOutput delivers the compiled document to the configured destination,
// standard output when no path is set.
func (a *App) writeOutput(ctx context.Context, path string, document []byte) error {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		_, err := a.outW.Write(document)
		return err
	}
	if err := os.WriteFile(path, document, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("Configuration written.", "path", path, "bytes", len(document))
	return nil
}
