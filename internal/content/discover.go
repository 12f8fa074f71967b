// Package content previews which files a set of content patterns selects.
// It never reads file contents; class-name extraction belongs to the CSS
// compiler.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/sevigo/themeforge/internal/core"
)

const maxConcurrentWalks = 4

// skippedDirs are not descended into unless a pattern names them explicitly.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Match lists the files one pattern selects, as slash-separated paths
// relative to the project root.
type Match struct {
	Pattern core.ContentPattern `json:"pattern"`
	Files   []string            `json:"files"`
	Skipped string              `json:"skipped,omitempty"`
}

// Discover resolves every pattern against root. Patterns are walked
// concurrently; results keep the input order. An unreadable root is returned
// as an error, while a pattern whose base directory does not exist simply
// matches nothing.
func Discover(ctx context.Context, root string, patterns []core.ContentPattern) ([]Match, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", root)
	}

	results := make([]Match, len(patterns))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWalks)

	for i, p := range patterns {
		g.Go(func() error {
			m, err := discoverOne(ctx, root, p)
			if err != nil {
				return fmt.Errorf("content[%d] %q: %w", i, p, err)
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func discoverOne(ctx context.Context, root string, p core.ContentPattern) (Match, error) {
	m := Match{Pattern: p, Files: []string{}}

	glob := normalize(strings.TrimSpace(string(p)))
	if path.IsAbs(glob) || glob == ".." || strings.HasPrefix(glob, "../") {
		m.Skipped = "pattern points outside the project root"
		return m, nil
	}
	if !doublestar.ValidatePattern(glob) {
		return m, doublestar.ErrBadPattern
	}

	files, err := walkGlob(ctx, os.DirFS(root), glob)
	if err != nil {
		return m, err
	}
	sort.Strings(files)
	m.Files = append(m.Files, files...)
	return m, nil
}

// normalize converts a glob to a clean slash path without a leading "./".
func normalize(glob string) string {
	glob = filepath.ToSlash(glob)
	for strings.HasPrefix(glob, "./") {
		glob = strings.TrimPrefix(glob, "./")
	}
	return path.Clean(glob)
}

// walkGlob walks fsys from the static base of glob and returns every file
// the glob matches. Directories in skippedDirs are pruned unless the glob
// names them.
func walkGlob(ctx context.Context, fsys fs.FS, glob string) ([]string, error) {
	base, _ := doublestar.SplitPattern(glob)
	if strings.Contains(base, `\`) {
		// escaped meta characters: the base is not a literal path
		base = "."
	}
	named := map[string]bool{}
	for _, s := range strings.Split(glob, "/") {
		named[s] = true
	}

	var files []string
	err := fs.WalkDir(fsys, base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == base {
				return fs.SkipAll
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if p != base && skippedDirs[d.Name()] && !named[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		ok, err := doublestar.Match(glob, p)
		if err != nil {
			return err
		}
		if ok {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
