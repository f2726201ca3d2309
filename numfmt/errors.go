package numfmt

import (
	"errors"
	"fmt"

	"github.com/TsubasaBE/go-cellfmt/condition"
)

var (
	// ErrTooManySections is returned for a pattern with more than four
	// sections.
	ErrTooManySections = errors.New("numfmt: too many sections")

	// ErrTooManyDefaultSections is returned when more than three non-text
	// sections would need a default condition.
	ErrTooManyDefaultSections = condition.ErrTooManyDefaults

	// ErrNoMatchingSection is returned when a value can be rendered by
	// neither a section nor the general fallback.
	ErrNoMatchingSection = errors.New("numfmt: no matching section")
)

// ParseError reports a pattern that cannot be compiled.
type ParseError struct {
	Pattern string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("numfmt: compile %q: %v", e.Pattern, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RenderError reports a value that cannot be rendered.
type RenderError struct {
	Value Value
	Err   error
}

func (e *RenderError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("numfmt: render nil value: %v", e.Err)
	}
	return fmt.Sprintf("numfmt: render %s value: %v", e.Value.Kind(), e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
