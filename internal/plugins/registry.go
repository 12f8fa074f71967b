// Package plugins provides the built-in CSS plugins and the explicit registry
// that maps plugin names in a theme file to plugin values.
package plugins

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sevigo/themeforge/internal/core"
)

var (
	ErrUnknownPlugin = errors.New("unknown plugin")
	ErrInvalidOption = errors.New("invalid plugin option")
)

// scopePrefix is accepted in front of built-in names so that theme files can
// keep the npm package names they were written with.
const scopePrefix = "@tailwindcss/"

// Factory builds a plugin from its options.
type Factory func(options map[string]any) (core.Plugin, error)

// Registry maps plugin names to factories. Nothing is registered implicitly.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in plugins.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(FormsName, NewForms)
	r.Register(TypographyName, NewTypography)
	return r
}

// Register adds or replaces a factory.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Names returns registered plugin names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build creates the named plugin.
func (r *Registry) Build(name string, options map[string]any) (core.Plugin, error) {
	f, ok := r.factories[strings.TrimPrefix(name, scopePrefix)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
	}
	p, err := f(options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// stringOption reads an optional string option.
func stringOption(options map[string]any, key, def string) (string, error) {
	raw, ok := options[key]
	if !ok {
		return def, nil
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", ErrInvalidOption, key)
	}
	return s, nil
}

// colorToken returns the colour at path, or fallback when the theme lacks it.
func colorToken(cfg *core.ResolvedConfig, path, fallback string) string {
	if v, ok := cfg.Token("colors." + path); ok && v.Kind() == core.KindScalar && v.String() != "" {
		return v.String()
	}
	return fallback
}

func decl(property, value string) core.Declaration {
	return core.Declaration{Property: property, Value: value}
}

// withSuffix appends suffix to every selector in a selector list.
func withSuffix(selectors []string, suffix string) string {
	out := make([]string, len(selectors))
	for i, s := range selectors {
		out[i] = s + suffix
	}
	return strings.Join(out, ",")
}
