// Package core defines the essential data structures and interfaces shared by
// the resolver and its consumers: design tokens, content patterns, plugins and
// the resolved configuration handed to a downstream CSS compiler.
package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Kind identifies which branch of a Value is populated.
type Kind int

const (
	KindScalar Kind = iota
	KindList
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a single design token. Exactly one of the three shapes is used:
// a scalar ("#800000"), an ordered list (a font stack) or a nested group
// (a colour scale, or a whole token category).
type Value struct {
	kind   Kind
	scalar string
	list   []string
	group  Tokens
}

// Tokens maps token names to values. The top level of a theme is keyed by
// category ("colors", "fontFamily", ...).
type Tokens map[string]Value

// Scalar builds a scalar token.
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// List builds a list token. The slice is copied.
func List(items ...string) Value {
	return Value{kind: KindList, list: append([]string{}, items...)}
}

// Group builds a group token. The map is deep-copied.
func Group(t Tokens) Value {
	return Value{kind: KindGroup, group: t.Clone()}
}

func (v Value) Kind() Kind { return v.kind }

// String returns the scalar value, or "" for lists and groups.
func (v Value) String() string { return v.scalar }

// CSS renders the value as a CSS property value: scalars verbatim, lists
// comma-separated (a font stack) and groups as "".
func (v Value) CSS() string {
	switch v.kind {
	case KindList:
		return strings.Join(v.list, ", ")
	case KindGroup:
		return ""
	default:
		return v.scalar
	}
}

// Items returns a copy of the list value, or nil for other kinds.
func (v Value) Items() []string {
	if v.kind != KindList {
		return nil
	}
	return append([]string{}, v.list...)
}

// Tokens returns a copy of the group value, or nil for other kinds.
func (v Value) Tokens() Tokens {
	if v.kind != KindGroup {
		return nil
	}
	return v.group.Clone()
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		return List(v.list...)
	case KindGroup:
		return Value{kind: KindGroup, group: v.group.Clone()}
	default:
		return v
	}
}

// Equal reports whether v and o hold structurally identical data.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	case KindGroup:
		return v.group.Equal(o.group)
	default:
		return v.scalar == o.scalar
	}
}

// Clone returns a deep copy of t. A nil table clones to an empty one.
func (t Tokens) Clone() Tokens {
	out := make(Tokens, len(t))
	for k, v := range t {
		out[k] = v.Clone()
	}
	return out
}

// Equal reports whether both tables contain the same keys with equal values.
func (t Tokens) Equal(o Tokens) bool {
	if len(t) != len(o) {
		return false
	}
	for k, v := range t {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Keys returns the table's keys in sorted order.
func (t Tokens) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup walks a dotted path ("colors.maroon.600") through nested groups.
func (t Tokens) Lookup(path string) (Value, bool) {
	parts := strings.Split(path, ".")
	cur := t
	for i, p := range parts {
		v, ok := cur[p]
		if !ok {
			return Value{}, false
		}
		if i == len(parts)-1 {
			return v.Clone(), true
		}
		if v.kind != KindGroup {
			return Value{}, false
		}
		cur = v.group
	}
	return Value{}, false
}

// Leaves returns the dotted path of every non-group value, sorted.
func (t Tokens) Leaves() []string {
	var out []string
	var walk func(prefix string, tt Tokens)
	walk = func(prefix string, tt Tokens) {
		for k, v := range tt {
			p := k
			if prefix != "" {
				p = prefix + "." + k
			}
			if v.kind == KindGroup {
				walk(p, v.group)
				continue
			}
			out = append(out, p)
		}
	}
	walk("", t)
	sort.Strings(out)
	return out
}

// MarshalJSON encodes scalars as strings, lists as arrays and groups as objects.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindGroup:
		return json.Marshal(v.group)
	default:
		return json.Marshal(v.scalar)
	}
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindList:
		return v.list, nil
	case KindGroup:
		return map[string]Value(v.group), nil
	default:
		return v.scalar, nil
	}
}

// ValueFromAny converts decoded YAML/TOML/JSON data into a Value. Maps become
// groups, slices become lists of scalars and everything else is formatted as
// a scalar. Non-string map keys (YAML's `50:`) are formatted with fmt.
func ValueFromAny(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Scalar(""), nil
	case string:
		return Scalar(x), nil
	case map[string]any:
		t, err := TokensFromAny(x)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindGroup, group: t}, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = v
		}
		return ValueFromAny(m)
	case []string:
		return List(x...), nil
	case []any:
		items := make([]string, 0, len(x))
		for i, item := range x {
			switch item.(type) {
			case map[string]any, map[any]any, []any:
				return Value{}, fmt.Errorf("list element %d: nested structures are not allowed in token lists", i)
			}
			items = append(items, fmt.Sprint(item))
		}
		return List(items...), nil
	case float64:
		return Scalar(formatFloat(x)), nil
	default:
		return Scalar(fmt.Sprint(x)), nil
	}
}

// TokensFromAny converts a decoded map into a token table.
func TokensFromAny(raw map[string]any) (Tokens, error) {
	out := make(Tokens, len(raw))
	for k, v := range raw {
		val, err := ValueFromAny(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = val
	}
	return out, nil
}

// formatFloat keeps JSON numbers such as 50 from turning into "50.000000".
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(f)
}
