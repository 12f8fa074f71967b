// Package palette inspects the colour scales of a resolved theme and exports
// tokens as CSS custom properties.
//
// Scale checks only report findings. Resolution never fails on them; callers
// decide whether findings are fatal (see the CLI's --strict flag).
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/sevigo/themeforge/internal/core"
)

var ErrFindings = errors.New("palette check reported findings")

// FindingKind classifies a palette finding.
type FindingKind string

const (
	FindingMissingWeight FindingKind = "missing-weight"
	FindingInvalidColor  FindingKind = "invalid-color"
	FindingLightness     FindingKind = "lightness-order"
)

// Finding is a single palette problem.
type Finding struct {
	Scale   string      `json:"scale"`
	Kind    FindingKind `json:"kind"`
	Weight  int         `json:"weight,omitempty"`
	Message string      `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("colors.%s: %s", f.Scale, f.Message)
}

// Scales returns every colors.<name> group whose keys are all scale weights.
func Scales(tokens core.Tokens) map[string]core.ColorScale {
	out := map[string]core.ColorScale{}
	colors, ok := tokens.Lookup("colors")
	if !ok {
		return out
	}
	for name, v := range colors.Tokens() {
		if scale, ok := core.ScaleFromValue(v); ok {
			out[name] = scale
		}
	}
	return out
}

// CompleteScales is Scales restricted to scales that define every weight.
func CompleteScales(tokens core.Tokens) map[string]core.ColorScale {
	out := Scales(tokens)
	for name, s := range out {
		if !s.Complete() {
			delete(out, name)
		}
	}
	return out
}

// OrderedKeys returns the keys of t with numeric keys first, in ascending
// numeric order, followed by the rest in lexical order. Scale weights thus
// come out as 50, 100, ..., 950.
func OrderedKeys(t core.Tokens) []string {
	keys := t.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// SortedNames returns the scale names in lexical order.
func SortedNames(scales map[string]core.ColorScale) []string {
	names := make([]string, 0, len(scales))
	for n := range scales {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Check reports missing weights, unparsable colours and lightness that does
// not decrease as the weight increases. Findings are ordered by scale name
// then weight.
func Check(tokens core.Tokens) []Finding {
	scales := Scales(tokens)
	var findings []Finding

	for _, name := range SortedNames(scales) {
		scale := scales[name]

		if missing := scale.Missing(); len(missing) > 0 {
			parts := make([]string, len(missing))
			for i, w := range missing {
				parts[i] = strconv.Itoa(w)
			}
			findings = append(findings, Finding{
				Scale:   name,
				Kind:    FindingMissingWeight,
				Message: "missing weights " + strings.Join(parts, ", "),
			})
		}

		prevWeight, prevL := 0, 0.0
		for _, w := range core.ScaleWeights {
			hex, ok := scale[w]
			if !ok {
				continue
			}
			c, err := colorful.Hex(strings.TrimSpace(hex))
			if err != nil {
				findings = append(findings, Finding{
					Scale:   name,
					Kind:    FindingInvalidColor,
					Weight:  w,
					Message: fmt.Sprintf("%d: %q is not a hex colour", w, hex),
				})
				continue
			}
			l, _, _ := c.Lab()
			if prevWeight != 0 && l > prevL {
				findings = append(findings, Finding{
					Scale:   name,
					Kind:    FindingLightness,
					Weight:  w,
					Message: fmt.Sprintf("%d is lighter than %d", w, prevWeight),
				})
			}
			prevWeight, prevL = w, l
		}
	}
	return findings
}
