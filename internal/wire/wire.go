//go:build wireinject
// +build wireinject

package wire

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/themeforge/internal/app"
	"github.com/sevigo/themeforge/internal/config"
	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/logger"
	"github.com/sevigo/themeforge/internal/server"
	"github.com/sevigo/themeforge/internal/theme"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		config.LoadConfig,
		theme.NewLoader,
		wire.Bind(new(core.ThemeLoader), new(*theme.Loader)),
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
	)
	return &app.App{}, nil, nil
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

// provideLogWriter returns nil so that logger.NewLogger picks the writer
// from the logging config.
func provideLogWriter() io.Writer {
	return nil
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}
