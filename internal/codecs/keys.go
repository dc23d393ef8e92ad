package codecs

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ripkitten-co/packable/internal/meta"
)

// KeyExtension renames struct fields that carry no explicit json tag name.
// Tagged names are written verbatim. Map keys never pass through here and are
// left unchanged.
type KeyExtension struct {
	jsoniter.DummyExtension
	Strategy KeyStrategy
}

func (e *KeyExtension) UpdateStructDescriptor(sd *jsoniter.StructDescriptor) {
	style := meta.StyleSnake
	if e.Strategy == KeyCamelCase {
		style = meta.StyleCamel
	}
	for _, binding := range sd.Fields {
		name := binding.Field.Name()
		// unexported fields have no names to rewrite
		if len(binding.FromNames) == 0 && len(binding.ToNames) == 0 {
			continue
		}
		tagName, hidden := meta.JSONKeyFromTag(binding.Field.Tag().Get("json"))
		if hidden || tagName != "" {
			continue
		}
		key := meta.Key(style, name)
		binding.ToNames = []string{key}
		binding.FromNames = []string{key}
	}
}
