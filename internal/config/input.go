package config

import (
	"fmt"

	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/resolver"
)

// PluginRegistry turns a plugin reference from a theme file into a plugin.
type PluginRegistry interface {
	Build(name string, options map[string]any) (core.Plugin, error)
}

// BuildInput converts a decoded theme file into resolver input, using base as
// the default token table.
func BuildInput(file *ThemeFile, base core.Tokens, registry PluginRegistry) (resolver.Input, error) {
	extendRaw, err := file.ExtendSection()
	if err != nil {
		return resolver.Input{}, err
	}
	extend, err := core.TokensFromAny(extendRaw)
	if err != nil {
		return resolver.Input{}, fmt.Errorf("%w: theme.extend.%w", ErrConfigParsing, err)
	}
	override, err := core.TokensFromAny(file.OverrideSection())
	if err != nil {
		return resolver.Input{}, fmt.Errorf("%w: theme.%w", ErrConfigParsing, err)
	}

	refs, err := file.PluginRefs()
	if err != nil {
		return resolver.Input{}, err
	}
	plugins := make([]core.Plugin, 0, len(refs))
	for i, ref := range refs {
		p, err := registry.Build(ref.Name, ref.Options)
		if err != nil {
			return resolver.Input{}, fmt.Errorf("plugins[%d]: %w", i, err)
		}
		plugins = append(plugins, p)
	}

	return resolver.Input{
		Content: core.Patterns(file.Content...),
		Theme: core.ThemeTokens{
			Base:     base,
			Override: override,
			Extend:   extend,
		},
		Plugins: plugins,
	}, nil
}
