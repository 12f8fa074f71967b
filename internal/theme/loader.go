// Package theme ties the pieces together: it reads the configured theme
// file, layers it over the built-in defaults and resolves it.
package theme

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/themeforge/internal/config"
	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/defaults"
	"github.com/sevigo/themeforge/internal/plugins"
	"github.com/sevigo/themeforge/internal/resolver"
)

// Loader implements core.ThemeLoader on top of the file system.
type Loader struct {
	root      string
	themeFile string
	registry  config.PluginRegistry
	resolver  *resolver.Resolver
	logger    *slog.Logger
}

var _ core.ThemeLoader = (*Loader)(nil)

// NewLoader builds a loader for cfg using the built-in plugin registry.
func NewLoader(cfg *config.Config, logger *slog.Logger) *Loader {
	return &Loader{
		root:      cfg.ProjectRoot,
		themeFile: cfg.ThemeFile,
		registry:  plugins.DefaultRegistry(),
		resolver:  resolver.New(logger),
		logger:    logger,
	}
}

// WithRegistry swaps the plugin registry.
func (l *Loader) WithRegistry(r config.PluginRegistry) *Loader {
	l.registry = r
	return l
}

func (l *Loader) ProjectRoot() string { return l.root }

// Path is the theme file location after joining it onto the project root.
func (l *Loader) Path() string {
	return config.ResolveThemePath(l.root, l.themeFile)
}

// Load reads, builds and resolves the theme file.
func (l *Loader) Load(ctx context.Context) (*core.ResolvedConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := l.Path()
	file, err := config.LoadThemeFile(path)
	if err != nil {
		return nil, err
	}

	base, err := defaults.Tokens()
	if err != nil {
		return nil, fmt.Errorf("failed to load default tokens: %w", err)
	}

	in, err := config.BuildInput(file, base, l.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rc, err := l.resolver.Resolve(in)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	l.logger.Debug("theme resolved", "path", path,
		"content", len(rc.Content()), "plugins", rc.PluginNames())
	return rc, nil
}
