package core

// ContentPattern is a glob, relative to the project root, naming files that
// are scanned for utility-class usage. Supported syntax is *, ?, [...], ** and
// {a,b} alternatives.
type ContentPattern string

func (p ContentPattern) String() string { return string(p) }

// Patterns converts plain strings into content patterns, keeping order.
func Patterns(globs ...string) []ContentPattern {
	out := make([]ContentPattern, len(globs))
	for i, g := range globs {
		out[i] = ContentPattern(g)
	}
	return out
}
