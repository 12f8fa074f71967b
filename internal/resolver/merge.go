package resolver

import (
	"github.com/sevigo/themeforge/internal/core"
)

// SpreadBase, used as an element of an override or extend list, expands to
// the list found at the same path in the base (default) table.
const SpreadBase = "...base"

// MergeTokens deep-merges extend onto a copy of base and returns the result.
// Groups present on both sides are merged key by key, recursively; any other
// value from extend replaces the base value. Neither argument is modified.
func MergeTokens(base, extend core.Tokens) core.Tokens {
	out := base.Clone()
	mergeInto(out, extend, base, "", nil)
	return out
}

// mergeInto merges src into dst in place. dst must be owned by the caller.
// spread is the base table at the same path; SpreadBase markers in src expand
// against it even when dst no longer holds the base value (after an
// override). onShadow, when set, is called with the dotted path of each
// replaced leaf.
func mergeInto(dst, src, spread core.Tokens, prefix string, onShadow func(path string)) {
	for _, key := range src.Keys() {
		sv := src[key]
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		dv, exists := dst[key]
		switch {
		case !exists:
			dst[key] = expandSpread(sv, spread[key])
		case dv.Kind() == core.KindGroup && sv.Kind() == core.KindGroup:
			merged := dv.Tokens()
			mergeInto(merged, sv.Tokens(), spread[key].Tokens(), path, onShadow)
			dst[key] = core.Group(merged)
		default:
			if onShadow != nil {
				onShadow(path)
			}
			dst[key] = expandSpread(sv, spread[key])
		}
	}
}

// expandSpread replaces SpreadBase elements in a list with the items of base,
// descending into groups in step with the base table. A marker without a base
// list is dropped.
func expandSpread(v, base core.Value) core.Value {
	switch v.Kind() {
	case core.KindList:
		items := v.Items()
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item == SpreadBase {
				out = append(out, base.Items()...)
				continue
			}
			out = append(out, item)
		}
		return core.List(out...)
	case core.KindGroup:
		t := v.Tokens()
		bt := base.Tokens()
		for k, child := range t {
			t[k] = expandSpread(child, bt[k])
		}
		return core.Group(t)
	default:
		return v.Clone()
	}
}
