package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/themeforge/internal/config"
	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/logger"
	"github.com/sevigo/themeforge/internal/theme"
)

var (
	themeFile   string
	projectRoot string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "themeforge",
	Short: "themeforge resolves utility-first CSS theme configurations.",
	Long: `themeforge reads a theme configuration (content globs, theme tokens and
plugins), merges it over the framework defaults and prints, checks or renders
the result.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&themeFile, "config", "c", "", "theme file, relative to --root (default theme.config.yml)")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", "", "project root that content patterns are relative to (default .)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	for key, flag := range map[string]string{
		"THEME_FILE":   "config",
		"PROJECT_ROOT": "root",
		"LOG_LEVEL":    "log-level",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("THEMEFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// session is what every subcommand needs: settings, a logger and a loader
// for the configured theme file.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	loader *theme.Loader
}

func newSession() (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	log := logger.NewLogger(cfg.Logging, nil)
	slog.SetDefault(log)

	return &session{
		cfg:    cfg,
		logger: log,
		loader: theme.NewLoader(cfg, log),
	}, nil
}

// resolve loads settings and resolves the theme file in one step.
func resolve(ctx context.Context) (*session, *core.ResolvedConfig, error) {
	s, err := newSession()
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.loader.Load(ctx)
	if err != nil {
		return s, nil, err
	}
	return s, rc, nil
}
