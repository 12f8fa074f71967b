package resolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/themeforge/internal/core"
)

func TestValidatePattern(t *testing.T) {
	valid := []string{
		"./vendor/laravel/jetstream/**/*.blade.php",
		"./resources/js/**/*.vue",
		"src/**/*.{html,js}",
		"{a,{b,c}}/x",
		`src/\{x\}.js`,
		"templates/[a-z]*.html",
		"!legacy/*.js",
		"index.html",
	}
	for _, p := range valid {
		assert.NoError(t, ValidatePattern(core.ContentPattern(p)), p)
	}

	invalid := []string{"", " ", "src/[.html", "src/{a", "src/a}", "src/*.{vue,js", `src/a\`}
	for _, p := range invalid {
		assert.Error(t, ValidatePattern(core.ContentPattern(p)), p)
	}
}

func TestValidatePattern_ManyBraceGroups(t *testing.T) {
	// Alternatives are matched, never expanded up front.
	p := strings.Repeat("{a,b}/", 30) + "*.html"
	assert.NoError(t, ValidatePattern(core.ContentPattern(p)))
}
