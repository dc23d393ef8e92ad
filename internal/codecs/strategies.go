package codecs

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// DateStrategy controls how time.Time values are written and read.
type DateStrategy int

const (
	DateSecondsSince1970 DateStrategy = iota
	DateMillisecondsSince1970
	DateRFC3339
	// DateDeferred leaves time.Time to its own MarshalJSON/UnmarshalJSON.
	DateDeferred
)

func (s DateStrategy) String() string {
	switch s {
	case DateSecondsSince1970:
		return "seconds_since_1970"
	case DateMillisecondsSince1970:
		return "milliseconds_since_1970"
	case DateRFC3339:
		return "rfc3339"
	case DateDeferred:
		return "deferred"
	}
	return fmt.Sprintf("DateStrategy(%d)", int(s))
}

// DataStrategy controls how []byte values are written and read.
type DataStrategy int

const (
	DataBase64 DataStrategy = iota
	DataHex
)

func (s DataStrategy) String() string {
	switch s {
	case DataBase64:
		return "base64"
	case DataHex:
		return "hex"
	}
	return fmt.Sprintf("DataStrategy(%d)", int(s))
}

// KeyStrategy controls how struct field names become object keys.
type KeyStrategy int

const (
	KeySnakeCase KeyStrategy = iota
	KeyCamelCase
	KeyUseDefault
)

func (s KeyStrategy) String() string {
	switch s {
	case KeySnakeCase:
		return "snake_case"
	case KeyCamelCase:
		return "camel_case"
	case KeyUseDefault:
		return "default"
	}
	return fmt.Sprintf("KeyStrategy(%d)", int(s))
}

// Extensions returns the jsoniter extensions implementing the given strategies.
// Strategies that match jsoniter's native behaviour contribute nothing.
func Extensions(date DateStrategy, data DataStrategy, keys KeyStrategy) []jsoniter.Extension {
	var exts []jsoniter.Extension
	if date != DateDeferred {
		exts = append(exts, &DateExtension{Strategy: date})
	}
	if data == DataHex {
		exts = append(exts, &HexExtension{})
	}
	if keys != KeyUseDefault {
		exts = append(exts, &KeyExtension{Strategy: keys})
	}
	return exts
}
