// Package render turns a resolved configuration into a stylesheet: the theme
// tokens as CSS custom properties followed by every plugin's rules.
package render

import (
	"fmt"
	"strings"

	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/palette"
)

// Stylesheet renders cfg. Plugins are applied in declaration order, so later
// plugins win at equal specificity. A failing plugin aborts rendering.
func Stylesheet(cfg *core.ResolvedConfig) (string, error) {
	var sb strings.Builder
	sb.WriteString(palette.CSSVariables(cfg.Theme()))

	for i, p := range cfg.Plugins() {
		rules, err := p.Apply(cfg)
		if err != nil {
			return "", fmt.Errorf("plugin[%d] %s: %w", i, p.Name(), err)
		}
		sb.WriteString("\n/* ")
		sb.WriteString(p.Name())
		sb.WriteString(" */\n")
		for _, r := range rules {
			writeRule(&sb, r)
		}
	}
	return sb.String(), nil
}

func writeRule(sb *strings.Builder, r core.Rule) {
	indent := ""
	if r.AtRule != "" {
		sb.WriteString(r.AtRule)
		sb.WriteString(" {\n")
		indent = "  "
	}
	sb.WriteString(indent)
	sb.WriteString(r.Selector)
	sb.WriteString(" {\n")
	for _, d := range r.Declarations {
		fmt.Fprintf(sb, "%s  %s: %s;\n", indent, d.Property, d.Value)
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
	if r.AtRule != "" {
		sb.WriteString("}\n")
	}
}
