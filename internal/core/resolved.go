package core

import (
	"encoding/json"
)

// ThemeTokens holds the three token tables that feed resolution. Base comes
// from the framework defaults, Override replaces whole categories and Extend
// is merged leaf by leaf on top.
type ThemeTokens struct {
	Base     Tokens
	Override Tokens
	Extend   Tokens
}

// ResolvedConfig is the immutable result of resolution. All accessors return
// copies, so consumers cannot alter the value seen by other consumers.
type ResolvedConfig struct {
	content []ContentPattern
	theme   Tokens
	plugins []Plugin
}

// NewResolvedConfig copies its inputs into a new ResolvedConfig. It performs
// no validation; use the resolver to build one from user input.
func NewResolvedConfig(content []ContentPattern, theme Tokens, plugins []Plugin) *ResolvedConfig {
	return &ResolvedConfig{
		content: append([]ContentPattern{}, content...),
		theme:   theme.Clone(),
		plugins: append([]Plugin{}, plugins...),
	}
}

// Content returns the content patterns in declaration order.
func (c *ResolvedConfig) Content() []ContentPattern {
	return append([]ContentPattern{}, c.content...)
}

// Theme returns a deep copy of the merged token table.
func (c *ResolvedConfig) Theme() Tokens {
	return c.theme.Clone()
}

// Token looks up a dotted token path in the merged table.
func (c *ResolvedConfig) Token(path string) (Value, bool) {
	return c.theme.Lookup(path)
}

// Plugins returns the plugins in declaration order.
func (c *ResolvedConfig) Plugins() []Plugin {
	return append([]Plugin{}, c.plugins...)
}

// PluginNames returns the plugin names in declaration order.
func (c *ResolvedConfig) PluginNames() []string {
	names := make([]string, len(c.plugins))
	for i, p := range c.plugins {
		names[i] = p.Name()
	}
	return names
}

// Equal reports structural equality. Plugins are compared by identity.
func (c *ResolvedConfig) Equal(o *ResolvedConfig) bool {
	if c == nil || o == nil {
		return c == o
	}
	if len(c.content) != len(o.content) || len(c.plugins) != len(o.plugins) {
		return false
	}
	for i := range c.content {
		if c.content[i] != o.content[i] {
			return false
		}
	}
	for i := range c.plugins {
		if c.plugins[i] != o.plugins[i] {
			return false
		}
	}
	return c.theme.Equal(o.theme)
}

// resolvedView is the wire shape of a ResolvedConfig.
type resolvedView struct {
	Content []ContentPattern `json:"content" yaml:"content"`
	Theme   Tokens           `json:"theme" yaml:"theme"`
	Plugins []string         `json:"plugins" yaml:"plugins"`
}

func (c *ResolvedConfig) view() resolvedView {
	return resolvedView{
		Content: c.Content(),
		Theme:   c.theme,
		Plugins: c.PluginNames(),
	}
}

// MarshalJSON encodes the config with plugins rendered by name.
func (c *ResolvedConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.view())
}

// MarshalYAML encodes the config with plugins rendered by name.
func (c *ResolvedConfig) MarshalYAML() (any, error) {
	return c.view(), nil
}
