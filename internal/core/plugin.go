package core

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
}

// Rule is a selector with its declarations. AtRule, when set, wraps the rule
// (for example "@media (min-width: 640px)").
type Rule struct {
	AtRule       string        `json:"atRule,omitempty" yaml:"atRule,omitempty"`
	Selector     string        `json:"selector" yaml:"selector"`
	Declarations []Declaration `json:"declarations" yaml:"declarations"`
}

//go:generate mockgen -destination=../../mocks/mock_plugin.go -package=mocks . Plugin

// Plugin contributes CSS rules derived from a resolved configuration. Plugins
// are applied in the order they are declared; later rules win at equal
// specificity.
type Plugin interface {
	// Name identifies the plugin in output and error messages.
	Name() string
	// Apply returns the rules this plugin emits for cfg. It must not retain
	// or modify cfg.
	Apply(cfg *ResolvedConfig) ([]Rule, error)
}
