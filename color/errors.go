package color

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrFormat   = errors.New("invalid color format")
	ErrDomain   = errors.New("value out of range")
	ErrLookup   = errors.New("unknown name")
	ErrArgument = errors.New("invalid argument")
)

// FormatError reports a malformed hexadecimal color string.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex color %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// DomainError reports a numeric channel outside its valid range.
type DomainError struct {
	Value    float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("value %g outside range [%g, %g]", e.Value, e.Min, e.Max)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// LookupError reports an unknown color name or colormap identifier.
// Kind is "color" or "colormap".
type LookupError struct {
	Kind string
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s name %q", e.Kind, e.Name)
}

func (e *LookupError) Is(target error) bool { return target == ErrLookup }

// ArgumentError reports missing or conflicting input.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

func (e *ArgumentError) Is(target error) bool { return target == ErrArgument }
