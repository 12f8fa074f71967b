package plugins

import (
	"fmt"
	"regexp"

	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/palette"
)

const TypographyName = "typography"

// classNamePattern accepts a single CSS identifier usable as a class selector.
var classNamePattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// proseWeights maps each --tw-prose-* variable to the scale weight it uses.
var proseWeights = []struct {
	variable string
	weight   int
}{
	{"--tw-prose-body", 700},
	{"--tw-prose-headings", 900},
	{"--tw-prose-lead", 600},
	{"--tw-prose-links", 900},
	{"--tw-prose-bold", 900},
	{"--tw-prose-counters", 500},
	{"--tw-prose-bullets", 300},
	{"--tw-prose-hr", 200},
	{"--tw-prose-quotes", 900},
	{"--tw-prose-code", 900},
	{"--tw-prose-pre-bg", 800},
}

// grayFallback is used when the theme has no complete gray scale.
var grayFallback = core.ColorScale{
	50: "#f9fafb", 100: "#f3f4f6", 200: "#e5e7eb", 300: "#d1d5db", 400: "#9ca3af",
	500: "#6b7280", 600: "#4b5563", 700: "#374151", 800: "#1f2937", 900: "#111827", 950: "#030712",
}

// Typography styles long-form content under a single class, and adds one
// colour modifier (".prose-<name>") for every complete colour scale.
type Typography struct {
	className string
}

// NewTypography builds the typography plugin. Option "className" changes the
// root class (default "prose").
func NewTypography(options map[string]any) (core.Plugin, error) {
	className, err := stringOption(options, "className", "prose")
	if err != nil {
		return nil, err
	}
	if !classNamePattern.MatchString(className) {
		return nil, fmt.Errorf("%w: className %q is not a CSS identifier", ErrInvalidOption, className)
	}
	return &Typography{className: className}, nil
}

func (t *Typography) Name() string { return TypographyName }

// ClassName returns the root class the plugin styles.
func (t *Typography) ClassName() string { return t.className }

func (t *Typography) Apply(cfg *core.ResolvedConfig) ([]core.Rule, error) {
	root := "." + t.className
	scales := palette.CompleteScales(cfg.Theme())

	gray, ok := scales["gray"]
	if !ok {
		gray = grayFallback
	}

	base := proseVariables(gray)
	base = append(base,
		decl("color", "var(--tw-prose-body)"),
		decl("max-width", "65ch"),
	)

	mono := "ui-monospace, monospace"
	if v, ok := cfg.Token("fontFamily.mono"); ok && v.CSS() != "" {
		mono = v.CSS()
	}

	rules := []core.Rule{
		{Selector: root, Declarations: base},
		{Selector: root + " :where(a)", Declarations: []core.Declaration{
			decl("color", "var(--tw-prose-links)"),
			decl("text-decoration", "underline"),
			decl("font-weight", "500"),
		}},
		{Selector: root + " :where(strong)", Declarations: []core.Declaration{
			decl("color", "var(--tw-prose-bold)"),
			decl("font-weight", "600"),
		}},
		heading(root, "h1", "800", "2.25em", "0", "0.8888889em", "1.1111111"),
		heading(root, "h2", "700", "1.5em", "2em", "1em", "1.3333333"),
		heading(root, "h3", "600", "1.25em", "1.6em", "0.6em", "1.6"),
		{Selector: root + " :where(blockquote)", Declarations: []core.Declaration{
			decl("color", "var(--tw-prose-quotes)"),
			decl("font-style", "italic"),
			decl("border-inline-start-width", "0.25rem"),
			decl("border-inline-start-color", "var(--tw-prose-hr)"),
		}},
		{Selector: root + " :where(code)", Declarations: []core.Declaration{
			decl("color", "var(--tw-prose-code)"),
			decl("font-weight", "600"),
			decl("font-family", mono),
		}},
		{Selector: root + " :where(pre)", Declarations: []core.Declaration{
			decl("background-color", "var(--tw-prose-pre-bg)"),
			decl("overflow-x", "auto"),
		}},
	}

	for _, name := range palette.SortedNames(scales) {
		rules = append(rules, core.Rule{
			Selector:     root + "-" + name,
			Declarations: proseVariables(scales[name]),
		})
	}
	return rules, nil
}

func proseVariables(scale core.ColorScale) []core.Declaration {
	out := make([]core.Declaration, 0, len(proseWeights))
	for _, pw := range proseWeights {
		out = append(out, decl(pw.variable, scale[pw.weight]))
	}
	return out
}

func heading(root, tag, weight, size, top, bottom, lineHeight string) core.Rule {
	return core.Rule{
		Selector: root + " :where(" + tag + ")",
		Declarations: []core.Declaration{
			decl("color", "var(--tw-prose-headings)"),
			decl("font-weight", weight),
			decl("font-size", size),
			decl("margin-top", top),
			decl("margin-bottom", bottom),
			decl("line-height", lineHeight),
		},
	}
}
