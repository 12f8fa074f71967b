package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTokensFromAny_YAMLIntegerKeys(t *testing.T) {
	src := `
colors:
  maroon:
    50: '#fdf2f2'
    600: '#800000'
fontFamily:
  sans: [Inter, Figtree]
lineHeight:
  snug: 1.375
`
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(src), &raw))

	tokens, err := TokensFromAny(raw)
	require.NoError(t, err)

	v, ok := tokens.Lookup("colors.maroon.600")
	require.True(t, ok)
	assert.Equal(t, "#800000", v.String())

	sans, ok := tokens.Lookup("fontFamily.sans")
	require.True(t, ok)
	assert.Equal(t, KindList, sans.Kind())
	assert.Equal(t, []string{"Inter", "Figtree"}, sans.Items())

	lh, ok := tokens.Lookup("lineHeight.snug")
	require.True(t, ok)
	assert.Equal(t, "1.375", lh.String())
}

func TestTokensFromAny_JSONNumbers(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"zIndex":{"50":50,"auto":"auto"}}`), &raw))

	tokens, err := TokensFromAny(raw)
	require.NoError(t, err)
	v, ok := tokens.Lookup("zIndex.50")
	require.True(t, ok)
	assert.Equal(t, "50", v.String())
}

func TestTokensFromAny_RejectsNestedListElements(t *testing.T) {
	_, err := TokensFromAny(map[string]any{
		"fontFamily": map[string]any{"sans": []any{"Inter", map[string]any{"x": 1}}},
	})
	assert.Error(t, err)
}

func TestValue_CloneIsDeep(t *testing.T) {
	orig := Group(Tokens{"sans": List("Inter")})
	clone := orig.Clone()

	inner := clone.Tokens()
	inner["sans"] = List("Changed")

	sans, _ := orig.Tokens().Lookup("sans")
	assert.Equal(t, []string{"Inter"}, sans.Items())
	assert.True(t, orig.Equal(clone))
}

func TestValue_MarshalJSON(t *testing.T) {
	tokens := Tokens{
		"colors":     Group(Tokens{"red": Scalar("#f00")}),
		"fontFamily": Group(Tokens{"sans": List("Inter", "sans-serif")}),
	}
	out, err := json.Marshal(tokens)
	require.NoError(t, err)
	assert.JSONEq(t, `{"colors":{"red":"#f00"},"fontFamily":{"sans":["Inter","sans-serif"]}}`, string(out))
}

func TestTokens_Leaves(t *testing.T) {
	tokens := Tokens{
		"colors": Group(Tokens{
			"white": Scalar("#fff"),
			"gray":  Group(Tokens{"50": Scalar("#f9fafb")}),
		}),
		"fontFamily": Group(Tokens{"sans": List("Inter")}),
	}
	assert.Equal(t, []string{"colors.gray.50", "colors.white", "fontFamily.sans"}, tokens.Leaves())
}

func TestScaleFromValue(t *testing.T) {
	scale, ok := ScaleFromValue(Group(Tokens{"50": Scalar("#fdf2f2"), "600": Scalar("#800000")}))
	require.True(t, ok)
	assert.Equal(t, "#800000", scale[600])
	assert.False(t, scale.Complete())
	assert.Contains(t, scale.Missing(), 950)

	_, ok = ScaleFromValue(Group(Tokens{"DEFAULT": Scalar("#000")}))
	assert.False(t, ok)

	_, ok = ScaleFromValue(Scalar("#000"))
	assert.False(t, ok)
}

func TestResolvedConfig_MarshalJSON(t *testing.T) {
	rc := NewResolvedConfig(
		Patterns("./resources/views/**/*.blade.php"),
		Tokens{"colors": Group(Tokens{"red": Scalar("#f00")})},
		nil,
	)
	out, err := json.Marshal(rc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":["./resources/views/**/*.blade.php"],"theme":{"colors":{"red":"#f00"}},"plugins":[]}`, string(out))
}
