package meta

import (
	"strings"
	"sync"
	"unicode"
)

// NameStyle selects how a Go field name is turned into an output key.
type NameStyle int

const (
	StyleSnake NameStyle = iota
	StyleCamel
)

type cacheKey struct {
	style NameStyle
	name  string
}

var cache sync.Map

// Key returns the output key for a Go field name in the given style.
func Key(style NameStyle, name string) string {
	k := cacheKey{style: style, name: name}
	if cached, ok := cache.Load(k); ok {
		return cached.(string)
	}
	var key string
	switch style {
	case StyleCamel:
		key = toCamelCase(name)
	default:
		key = toSnakeCase(name)
	}
	actual, _ := cache.LoadOrStore(k, key)
	return actual.(string)
}

// JSONKeyFromTag returns the name portion of a json struct tag and whether the
// tag hides the field entirely.
func JSONKeyFromTag(tag string) (name string, hidden bool) {
	if tag == "" {
		return "", false
	}
	name, _, _ = strings.Cut(tag, ",")
	if name == "-" && !strings.Contains(tag, ",") {
		return "", true
	}
	return name, false
}

func toSnakeCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// a capital opens a new word after a lower/digit, or ends an
			// acronym run when the next rune is lowercase ("HTTPStatus")
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func toCamelCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	if unicode.IsLower(runes[0]) {
		return s
	}

	// find the length of the leading uppercase run
	upper := 0
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			break
		}
		upper++
	}

	// entire string is uppercase (e.g. "ID", "URL")
	if upper == len(runes) {
		return strings.ToLower(s)
	}

	// single leading capital (e.g. "Name" -> "name")
	if upper == 1 {
		return string(unicode.ToLower(runes[0])) + string(runes[1:])
	}

	// multi-char uppercase prefix (e.g. "HTTPStatus" -> "httpStatus")
	// lowercase all but the last uppercase char, which starts the next word
	return strings.ToLower(string(runes[:upper-1])) + string(runes[upper-1:])
}
