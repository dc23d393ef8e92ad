package packable

import (
	"errors"
	"fmt"
)

var (
	// ErrEncoding is matched by every error returned when a value cannot be
	// turned into its byte encoding.
	ErrEncoding = errors.New("encoding failed")

	// ErrParsing is matched by every error returned when encoded bytes cannot
	// be parsed back into a tree or decoded into a value.
	ErrParsing = errors.New("parsing failed")

	errFragment = errors.New("top-level value is not an object or array")
)

// EncodingError reports a value whose structure could not be encoded.
// Type is the Go type of the value passed in.
type EncodingError struct {
	Type string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("packable: encode %s: %v", e.Type, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// ParsingError reports encoded bytes that could not be parsed.
type ParsingError struct {
	Type string
	Err  error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("packable: parse %s: %v", e.Type, e.Err)
}

func (e *ParsingError) Unwrap() error { return e.Err }

func (e *ParsingError) Is(target error) bool { return target == ErrParsing }

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}
