package packable

import "bytes"

// ParseOptions controls how encoded bytes are parsed into a tree.
type ParseOptions struct {
	// AllowFragments accepts a top-level string, number, boolean or null.
	// When false only objects and arrays are accepted.
	AllowFragments bool
	// UseNumber yields json.Number instead of float64 for numbers.
	UseNumber bool
}

// DefaultParseOptions is used by Tree and TreeUsing.
var DefaultParseOptions = ParseOptions{AllowFragments: true}

func isContainer(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
