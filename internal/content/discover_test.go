package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/themeforge/internal/core"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("<div class=\"text-maroon-600\"></div>"), 0o600))
	}
}

func TestDiscover_LaravelPatterns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"vendor/laravel/framework/src/Illuminate/Pagination/resources/views/tailwind.blade.php",
		"vendor/laravel/framework/src/Illuminate/Pagination/resources/views/nested/skip.blade.php",
		"vendor/laravel/jetstream/stubs/livewire/resources/views/dashboard.blade.php",
		"vendor/laravel/jetstream/README.md",
		"storage/framework/views/0a1b2c.php",
		"resources/views/welcome.blade.php",
		"resources/views/auth/login.blade.php",
		"resources/views/partials.php",
		"resources/js/Pages/Dashboard.vue",
		"resources/js/app.js",
		"node_modules/pkg/resources/js/ignored.vue",
	)

	patterns := core.Patterns(
		"./vendor/laravel/framework/src/Illuminate/Pagination/resources/views/*.blade.php",
		"./vendor/laravel/jetstream/**/*.blade.php",
		"./storage/framework/views/*.php",
		"./resources/views/**/*.blade.php",
		"./resources/js/**/*.vue",
	)

	matches, err := Discover(context.Background(), root, patterns)
	require.NoError(t, err)
	require.Len(t, matches, len(patterns))

	assert.Equal(t, []string{"vendor/laravel/framework/src/Illuminate/Pagination/resources/views/tailwind.blade.php"}, matches[0].Files)
	assert.Equal(t, []string{"vendor/laravel/jetstream/stubs/livewire/resources/views/dashboard.blade.php"}, matches[1].Files)
	assert.Equal(t, []string{"storage/framework/views/0a1b2c.php"}, matches[2].Files)
	assert.Equal(t, []string{"resources/views/auth/login.blade.php", "resources/views/welcome.blade.php"}, matches[3].Files)
	assert.Equal(t, []string{"resources/js/Pages/Dashboard.vue"}, matches[4].Files)

	for i, m := range matches {
		assert.Equal(t, patterns[i], m.Pattern, "order is preserved")
	}
}

func TestDiscover_BracesAndRootFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "index.html", "src/a.js", "src/b.ts", "src/deep/c.js", "other.html")

	matches, err := Discover(context.Background(), root, core.Patterns("index.html", "src/*.{js,ts}", "**/*.js"))
	require.NoError(t, err)

	assert.Equal(t, []string{"index.html"}, matches[0].Files)
	assert.Equal(t, []string{"src/a.js", "src/b.ts"}, matches[1].Files)
	assert.Equal(t, []string{"src/a.js", "src/deep/c.js"}, matches[2].Files)
}

func TestDiscover_MissingBaseMatchesNothing(t *testing.T) {
	root := t.TempDir()

	matches, err := Discover(context.Background(), root, core.Patterns("./resources/views/**/*.blade.php"))
	require.NoError(t, err)
	assert.Empty(t, matches[0].Files)
	assert.Empty(t, matches[0].Skipped)
}

func TestDiscover_OutsideRoot(t *testing.T) {
	matches, err := Discover(context.Background(), t.TempDir(), core.Patterns("../elsewhere/*.php"))
	require.NoError(t, err)
	assert.NotEmpty(t, matches[0].Skipped)
}

func TestDiscover_UnreadableRoot(t *testing.T) {
	_, err := Discover(context.Background(), filepath.Join(t.TempDir(), "missing"), core.Patterns("*.html"))
	assert.Error(t, err)
}

func TestDiscover_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "src/a.js")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Discover(ctx, root, core.Patterns("src/**/*.js"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_LiteralBangAndEscapes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "!x/a.js", "x/b.js", "src/{y}.js", "src/y.js")

	matches, err := Discover(context.Background(), root, core.Patterns("!x/*.js", `src/\{y\}.js`))
	require.NoError(t, err)

	assert.Equal(t, []string{"!x/a.js"}, matches[0].Files)
	assert.Equal(t, []string{"src/{y}.js"}, matches[1].Files)
}

func TestDiscover_NamedSkippedDir(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "node_modules/ui/button.vue", "src/app.vue")

	matches, err := Discover(context.Background(), root, core.Patterns("**/*.vue", "node_modules/**/*.vue"))
	require.NoError(t, err)

	assert.Equal(t, []string{"src/app.vue"}, matches[0].Files)
	assert.Equal(t, []string{"node_modules/ui/button.vue"}, matches[1].Files)
}

func TestDiscover_MalformedPattern(t *testing.T) {
	_, err := Discover(context.Background(), t.TempDir(), core.Patterns("src/{a"))
	assert.Error(t, err)
}
