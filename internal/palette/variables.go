package palette

import (
	"strings"

	"github.com/sevigo/themeforge/internal/core"
)

// Variables flattens colour and font tokens into CSS custom properties, in
// stable order: --color-<path> for every colour leaf, then --font-<name>.
func Variables(tokens core.Tokens) []core.Declaration {
	var out []core.Declaration

	if colors, ok := tokens.Lookup("colors"); ok {
		out = appendLeaves(out, "--color", colors.Tokens())
	}
	if fonts, ok := tokens.Lookup("fontFamily"); ok {
		ft := fonts.Tokens()
		for _, name := range ft.Keys() {
			if css := ft[name].CSS(); css != "" {
				out = append(out, core.Declaration{Property: "--font-" + name, Value: css})
			}
		}
	}
	return out
}

func appendLeaves(out []core.Declaration, prefix string, t core.Tokens) []core.Declaration {
	for _, k := range OrderedKeys(t) {
		v := t[k]
		name := prefix
		if k != "DEFAULT" {
			name += "-" + k
		}
		if v.Kind() == core.KindGroup {
			out = appendLeaves(out, name, v.Tokens())
			continue
		}
		out = append(out, core.Declaration{Property: name, Value: v.CSS()})
	}
	return out
}

// CSSVariables renders Variables as a :root block.
func CSSVariables(tokens core.Tokens) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, d := range Variables(tokens) {
		sb.WriteString("  ")
		sb.WriteString(d.Property)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
