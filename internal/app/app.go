// Package app assembles the theme preview server: configuration, logger,
// theme loader and HTTP server.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/themeforge/internal/config"
	"github.com/sevigo/themeforge/internal/server"
	"github.com/sevigo/themeforge/internal/theme"
)

// App holds the main application components.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	loader *theme.Loader
	server *server.Server
	logger *slog.Logger
}

// NewApp sets up the application with all its dependencies.
func NewApp(ctx context.Context, cfg *config.Config, loader *theme.Loader, srv *server.Server, logger *slog.Logger) *App {
	return &App{
		ctx:    ctx,
		cfg:    cfg,
		loader: loader,
		server: srv,
		logger: logger,
	}
}

// Start checks that the theme resolves, then runs the HTTP server. A theme
// that fails to resolve is logged but does not stop the server; the preview
// endpoints report the error until the file is fixed.
func (a *App) Start() error {
	a.logger.Info("starting themeforge preview",
		"server_port", a.cfg.ServerPort,
		"project_root", a.cfg.ProjectRoot,
		"theme_file", a.loader.Path())

	if rc, err := a.loader.Load(a.ctx); err != nil {
		a.logger.Warn("theme does not resolve yet", "error", err)
	} else {
		a.logger.Info("theme resolved",
			"content_patterns", len(rc.Content()),
			"plugins", rc.PluginNames())
	}

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down themeforge preview")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("themeforge stopped with errors", "error", err)
		return err
	}

	a.logger.Info("themeforge stopped successfully")
	return nil
}
