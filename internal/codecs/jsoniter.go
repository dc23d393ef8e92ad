package codecs

import jsoniter "github.com/json-iterator/go"

// JSONIterConfig selects the parser behaviour and the extensions registered on
// a JSONIterCodec.
type JSONIterConfig struct {
	UseNumber  bool
	Extensions []jsoniter.Extension
}

// JSONIterCodec is a Codec backed by its own frozen jsoniter configuration, so
// extensions registered on one codec never leak into another.
type JSONIterCodec struct {
	api jsoniter.API
}

func NewJSONIter(exts ...jsoniter.Extension) *JSONIterCodec {
	return NewJSONIterWith(JSONIterConfig{Extensions: exts})
}

func NewJSONIterWith(cfg JSONIterConfig) *JSONIterCodec {
	api := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		UseNumber:              cfg.UseNumber,
	}.Froze()
	for _, ext := range cfg.Extensions {
		api.RegisterExtension(ext)
	}
	return &JSONIterCodec{api: api}
}

func (c *JSONIterCodec) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

func (c *JSONIterCodec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}
