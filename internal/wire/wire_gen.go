// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/themeforge/internal/app"
	"github.com/sevigo/themeforge/internal/config"
	"github.com/sevigo/themeforge/internal/logger"
	"github.com/sevigo/themeforge/internal/server"
	"github.com/sevigo/themeforge/internal/theme"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	slogLogger := logger.NewLogger(cfg.Logging, nil)
	slog.SetDefault(slogLogger)

	// Theme loader
	loader := theme.NewLoader(cfg, slogLogger)

	// Server
	srv := server.NewServer(ctx, cfg, loader, slogLogger)

	// App
	application := app.NewApp(ctx, cfg, loader, srv, slogLogger)

	cleanup := func() {}

	return application, cleanup, nil
}
