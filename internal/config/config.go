package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/themeforge/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	ThemeFile     string
	ProjectRoot   string
	ServerPort    string
	StrictPalette bool
	Logging       logger.Config
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates the result. Values bound to CLI flags
// through viper take precedence over both.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("THEME_FILE", DefaultThemeFile)
	viper.SetDefault("PROJECT_ROOT", ".")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("STRICT_PALETTE", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stderr")
	viper.SetDefault("LOG_FILE", logger.DefaultLogFile)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no .env file loaded")
		} else {
			slog.Warn("failed to read .env file, using environment and defaults", "error", err)
		}
	}

	if strings.TrimSpace(viper.GetString("THEME_FILE")) == "" {
		return nil, fmt.Errorf("THEME_FILE must not be empty")
	}
	if viper.GetString("SERVER_PORT") == "" {
		return nil, fmt.Errorf("SERVER_PORT must not be empty")
	}

	format := strings.ToLower(viper.GetString("LOG_FORMAT"))
	if format != "text" && format != "json" {
		slog.Warn("unrecognized log format, defaulting to text", "provided", format)
		format = "text"
	}

	return &Config{
		ThemeFile:     viper.GetString("THEME_FILE"),
		ProjectRoot:   viper.GetString("PROJECT_ROOT"),
		ServerPort:    viper.GetString("SERVER_PORT"),
		StrictPalette: viper.GetBool("STRICT_PALETTE"),
		Logging: logger.Config{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: format,
			Output: viper.GetString("LOG_OUTPUT"),
			File:   viper.GetString("LOG_FILE"),
		},
	}, nil
}
