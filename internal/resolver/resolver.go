// Package resolver turns user theme input into a single immutable
// core.ResolvedConfig: it validates content patterns, merges token tables and
// keeps the plugin list in declaration order.
package resolver

import (
	"fmt"
	"log/slog"

	"github.com/sevigo/themeforge/internal/core"
)

// Input is everything a theme configuration declares.
type Input struct {
	Content []core.ContentPattern
	Theme   core.ThemeTokens
	Plugins []core.Plugin
}

// Resolver resolves theme input. It holds no mutable state and is safe for
// concurrent use.
type Resolver struct {
	logger *slog.Logger
}

// New returns a Resolver that logs shadowed tokens at debug level.
func New(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// Resolve validates the content patterns, merges Override and Extend onto a
// copy of Base and returns the result. Conflicting leaves are resolved in
// favour of Extend without error. Input is never modified.
func (r *Resolver) Resolve(in Input) (*core.ResolvedConfig, error) {
	for i, p := range in.Content {
		if err := ValidatePattern(p); err != nil {
			return nil, &core.InvalidPatternError{Index: i, Pattern: string(p), Reason: err.Error()}
		}
	}

	for i, p := range in.Plugins {
		if p == nil {
			return nil, fmt.Errorf("plugins[%d]: %w", i, core.ErrNilPlugin)
		}
	}

	theme := in.Theme.Base.Clone()
	for _, category := range in.Theme.Override.Keys() {
		if _, ok := theme[category]; ok {
			r.logger.Debug("theme category replaced", "category", category)
		}
		theme[category] = expandSpread(in.Theme.Override[category], in.Theme.Base[category])
	}

	mergeInto(theme, in.Theme.Extend, in.Theme.Base, "", func(path string) {
		r.logger.Debug("token shadowed by extend", "path", path)
	})

	return core.NewResolvedConfig(in.Content, theme, in.Plugins), nil
}

// Resolve is a convenience wrapper around a Resolver with the default logger.
func Resolve(in Input) (*core.ResolvedConfig, error) {
	return New(nil).Resolve(in)
}
