package core

import "context"

//go:generate mockgen -destination=../../mocks/mock_theme_loader.go -package=mocks . ThemeLoader

// ThemeLoader reads the project's theme file and resolves it. Every call
// performs a fresh resolution; nothing is cached between calls.
type ThemeLoader interface {
	Load(ctx context.Context) (*ResolvedConfig, error)
	// ProjectRoot is the directory content patterns are relative to.
	ProjectRoot() string
}
