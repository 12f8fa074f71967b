package plugins

import (
	"fmt"

	"github.com/sevigo/themeforge/internal/core"
)

const FormsName = "forms"

// Forms strategies.
const (
	StrategyBase  = "base"
	StrategyClass = "class"
)

var (
	baseTextInputs = []string{
		"[type='text']", "input:where(:not([type]))", "[type='email']", "[type='url']",
		"[type='password']", "[type='number']", "[type='date']", "[type='datetime-local']",
		"[type='month']", "[type='search']", "[type='tel']", "[type='time']",
		"[type='week']", "[multiple]", "textarea", "select",
	}
	classTextInputs = []string{".form-input", ".form-textarea", ".form-select", ".form-multiselect"}
)

// Forms resets native form controls so they can be styled with utilities.
// With the class strategy the same rules are scoped to .form-* classes.
type Forms struct {
	strategy string
}

// NewForms builds the forms plugin. Option "strategy" is "base" (default) or
// "class".
func NewForms(options map[string]any) (core.Plugin, error) {
	strategy, err := stringOption(options, "strategy", StrategyBase)
	if err != nil {
		return nil, err
	}
	if strategy != StrategyBase && strategy != StrategyClass {
		return nil, fmt.Errorf("%w: strategy %q", ErrInvalidOption, strategy)
	}
	return &Forms{strategy: strategy}, nil
}

func (f *Forms) Name() string { return FormsName }

// Strategy returns the configured selector strategy.
func (f *Forms) Strategy() string { return f.strategy }

func (f *Forms) Apply(cfg *core.ResolvedConfig) ([]core.Rule, error) {
	border := colorToken(cfg, "gray.500", "#6b7280")
	focus := colorToken(cfg, "blue.600", "#2563eb")
	white := colorToken(cfg, "white", "#fff")

	radius := "0px"
	if v, ok := cfg.Token("borderRadius.none"); ok && v.Kind() == core.KindScalar {
		radius = v.String()
	}

	inputs := baseTextInputs
	placeholders := []string{"input::placeholder", "textarea::placeholder"}
	checkbox, radio := "[type='checkbox']", "[type='radio']"
	if f.strategy == StrategyClass {
		inputs = classTextInputs
		placeholders = []string{".form-input::placeholder", ".form-textarea::placeholder"}
		checkbox, radio = ".form-checkbox", ".form-radio"
	}
	toggles := []string{checkbox, radio}

	return []core.Rule{
		{
			Selector: withSuffix(inputs, ""),
			Declarations: []core.Declaration{
				decl("appearance", "none"),
				decl("background-color", white),
				decl("border-color", border),
				decl("border-width", "1px"),
				decl("border-radius", radius),
				decl("padding", "0.5rem 0.75rem"),
				decl("font-size", "1rem"),
				decl("line-height", "1.5rem"),
			},
		},
		{
			Selector: withSuffix(inputs, ":focus"),
			Declarations: []core.Declaration{
				decl("outline", "2px solid transparent"),
				decl("outline-offset", "2px"),
				decl("--tw-ring-color", focus),
				decl("border-color", focus),
			},
		},
		{
			Selector: withSuffix(placeholders, ""),
			Declarations: []core.Declaration{
				decl("color", border),
				decl("opacity", "1"),
			},
		},
		{
			Selector: withSuffix(toggles, ""),
			Declarations: []core.Declaration{
				decl("appearance", "none"),
				decl("padding", "0"),
				decl("display", "inline-block"),
				decl("vertical-align", "middle"),
				decl("height", "1rem"),
				decl("width", "1rem"),
				decl("color", focus),
				decl("background-color", white),
				decl("border-color", border),
				decl("border-width", "1px"),
			},
		},
		{Selector: checkbox, Declarations: []core.Declaration{decl("border-radius", radius)}},
		{Selector: radio, Declarations: []core.Declaration{decl("border-radius", "100%")}},
		{
			Selector: withSuffix(toggles, ":checked"),
			Declarations: []core.Declaration{
				decl("background-color", "currentColor"),
				decl("border-color", "transparent"),
			},
		},
	}, nil
}
