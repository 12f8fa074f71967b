package resolver

import (
	"errors"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sevigo/themeforge/internal/core"
)

var (
	errEmptyPattern     = errors.New("pattern is empty")
	errMalformedPattern = errors.New("malformed glob: unbalanced [] or {}, or a trailing escape")
)

// ValidatePattern checks that p is a usable content glob: non-empty and
// accepted by the doublestar dialect (*, ?, [...], ** and {a,b}).
func ValidatePattern(p core.ContentPattern) error {
	s := strings.TrimSpace(string(p))
	if s == "" {
		return errEmptyPattern
	}
	if !doublestar.ValidatePattern(s) {
		return errMalformedPattern
	}
	return nil
}
