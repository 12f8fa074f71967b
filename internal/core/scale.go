package core

import "strconv"

// ScaleWeights is the fixed, ordered set of colour-scale weights.
var ScaleWeights = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// ColorScale maps a weight to a colour value.
type ColorScale map[int]string

// IsScaleWeight reports whether key names one of ScaleWeights.
func IsScaleWeight(key string) bool {
	n, err := strconv.Atoi(key)
	if err != nil {
		return false
	}
	for _, w := range ScaleWeights {
		if w == n {
			return true
		}
	}
	return false
}

// ScaleFromValue interprets a group whose keys are all scale weights as a
// ColorScale. Any other shape returns false.
func ScaleFromValue(v Value) (ColorScale, bool) {
	if v.kind != KindGroup || len(v.group) == 0 {
		return nil, false
	}
	scale := make(ColorScale, len(v.group))
	for k, c := range v.group {
		if !IsScaleWeight(k) || c.kind != KindScalar {
			return nil, false
		}
		n, _ := strconv.Atoi(k)
		scale[n] = c.scalar
	}
	return scale, true
}

// Missing returns the scale weights that have no colour, in order.
func (s ColorScale) Missing() []int {
	var missing []int
	for _, w := range ScaleWeights {
		if _, ok := s[w]; !ok {
			missing = append(missing, w)
		}
	}
	return missing
}

// Complete reports whether every weight is present.
func (s ColorScale) Complete() bool {
	return len(s.Missing()) == 0
}
