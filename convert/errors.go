package convert

import (
	"errors"
	"fmt"

	"dtc/tokens"
)

// ErrUnsupported is wrapped by ParseError for inputs which are valid CSS but
// have no token representation (multiple shadows, inset shadows and such).
var ErrUnsupported = errors.New("unsupported value")

// ParseError reports raw CSS value which could not be converted.
type ParseError struct {
	Kind   tokens.Kind
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("unable to convert %q to %s: %s", e.Input, e.Kind, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func fail(kind tokens.Kind, input, format string, args ...any) error {
	return &ParseError{Kind: kind, Input: input, Reason: fmt.Sprintf(format, args...)}
}

func wrap(kind tokens.Kind, input string, err error, format string, args ...any) error {
	return &ParseError{Kind: kind, Input: input, Reason: fmt.Sprintf(format, args...), Err: err}
}

func unsupported(kind tokens.Kind, input, reason string) error {
	return wrap(kind, input, ErrUnsupported, "%s", reason)
}

// checked runs final range validation of converted value.
func checked[T tokens.Value](v T, raw string) (T, error) {
	if err := v.Validate(); err != nil {
		var zero T
		return zero, wrap(v.Kind(), raw, err, "out of range")
	}
	return v, nil
}
