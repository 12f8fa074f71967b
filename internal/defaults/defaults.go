// Package defaults provides the framework's built-in design tokens, the
// "base" table that user extensions are merged onto.
package defaults

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/themeforge/internal/core"
)

//go:embed defaults.yml
var defaultsYAML []byte

var load = sync.OnceValues(func() (core.Tokens, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(defaultsYAML, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	return core.TokensFromAny(raw)
})

// Tokens returns a fresh copy of the default token table.
func Tokens() (core.Tokens, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

// MustTokens is Tokens for callers that treat a broken embedded file as a
// programming error.
func MustTokens() core.Tokens {
	t, err := Tokens()
	if err != nil {
		panic(err)
	}
	return t
}
