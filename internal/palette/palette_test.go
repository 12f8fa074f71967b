package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/themeforge/internal/core"
)

func scaleTokens(scales map[string]core.Tokens) core.Tokens {
	colors := core.Tokens{"white": core.Scalar("#fff")}
	for name, s := range scales {
		colors[name] = core.Group(s)
	}
	return core.Tokens{"colors": core.Group(colors)}
}

func fullMaroon() core.Tokens {
	return core.Tokens{
		"50": core.Scalar("#fdf2f2"), "100": core.Scalar("#fbe2e2"), "200": core.Scalar("#f7caca"),
		"300": core.Scalar("#f1a5a5"), "400": core.Scalar("#e67373"), "500": core.Scalar("#d64646"),
		"600": core.Scalar("#800000"), "700": core.Scalar("#6b0000"), "800": core.Scalar("#5c0000"),
		"900": core.Scalar("#4d0000"), "950": core.Scalar("#2d0000"),
	}
}

func TestScales(t *testing.T) {
	tokens := scaleTokens(map[string]core.Tokens{
		"maroon": fullMaroon(),
		"brand":  {"DEFAULT": core.Scalar("#123456")},
	})

	scales := Scales(tokens)
	require.Contains(t, scales, "maroon")
	assert.NotContains(t, scales, "brand", "non-weight keys are not a scale")
	assert.NotContains(t, scales, "white")
	assert.Equal(t, "#800000", scales["maroon"][600])
}

func TestCheck(t *testing.T) {
	inverted := fullMaroon()
	inverted["700"] = core.Scalar("#ffffff")

	tests := []struct {
		name  string
		scale core.Tokens
		kinds []FindingKind
	}{
		{name: "clean reference scale", scale: fullMaroon()},
		{
			name:  "missing weights",
			scale: core.Tokens{"500": core.Scalar("#d64646"), "600": core.Scalar("#800000")},
			kinds: []FindingKind{FindingMissingWeight},
		},
		{name: "lightness inverted", scale: inverted, kinds: []FindingKind{FindingLightness}},
		{
			name: "invalid colour",
			scale: func() core.Tokens {
				s := fullMaroon()
				s["300"] = core.Scalar("maroonish")
				return s
			}(),
			kinds: []FindingKind{FindingInvalidColor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Check(scaleTokens(map[string]core.Tokens{"maroon": tt.scale}))
			var kinds []FindingKind
			for _, f := range findings {
				assert.Equal(t, "maroon", f.Scale)
				kinds = append(kinds, f.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestCheck_ShortHex(t *testing.T) {
	s := fullMaroon()
	s["50"] = core.Scalar("#fff")
	assert.Empty(t, Check(scaleTokens(map[string]core.Tokens{"maroon": s})))
}

func TestOrderedKeys(t *testing.T) {
	keys := OrderedKeys(core.Tokens{
		"950": core.Scalar(""), "50": core.Scalar(""), "DEFAULT": core.Scalar(""), "100": core.Scalar(""),
	})
	assert.Equal(t, []string{"50", "100", "950", "DEFAULT"}, keys)
}

func TestCSSVariables(t *testing.T) {
	tokens := scaleTokens(map[string]core.Tokens{
		"maroon": {"50": core.Scalar("#fdf2f2"), "600": core.Scalar("#800000")},
		"brand":  {"DEFAULT": core.Scalar("#123456"), "light": core.Scalar("#abcdef")},
	})
	tokens["fontFamily"] = core.Group(core.Tokens{"sans": core.List("Inter", "Figtree", "sans-serif")})

	css := CSSVariables(tokens)
	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Contains(t, css, "  --color-maroon-600: #800000;\n")
	assert.Contains(t, css, "  --color-brand: #123456;\n")
	assert.Contains(t, css, "  --color-brand-light: #abcdef;\n")
	assert.Contains(t, css, "  --font-sans: Inter, Figtree, sans-serif;\n")
	assert.Less(t, strings.Index(css, "maroon-50:"), strings.Index(css, "maroon-600:"))
}
