package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPattern = errors.New("invalid content pattern")
	ErrNilPlugin      = errors.New("plugin list contains a nil plugin")
)

// InvalidPatternError reports a content pattern that cannot be used for file
// discovery. It matches ErrInvalidPattern with errors.Is.
type InvalidPatternError struct {
	Index   int
	Pattern string
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("content[%d] %q: %s", e.Index, e.Pattern, e.Reason)
}

func (e *InvalidPatternError) Unwrap() error {
	return ErrInvalidPattern
}
