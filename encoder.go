package packable

import (
	"fmt"
	"log/slog"

	"github.com/ripkitten-co/packable/internal/codecs"
	"gopkg.in/yaml.v3"
)

// Encoder converts values to bytes and trees with a fixed set of strategies.
// An Encoder is immutable and safe for concurrent use. Encoders are built with
// New; the zero value and a nil *Encoder behave like Default.
type Encoder struct {
	cfg encoderConfig

	codec   codecs.Codec
	trees   codecs.Codec
	numbers codecs.Codec
}

// Default is the shared encoder: seconds since the epoch for dates, base64 for
// binary data and snake_case keys.
var Default = New()

// New builds an Encoder from the default configuration and the given options.
func New(opts ...Option) *Encoder {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	exts := codecs.Extensions(cfg.date, cfg.data, cfg.keys)
	return &Encoder{
		cfg:     *cfg,
		codec:   codecs.NewJSONIter(exts...),
		trees:   codecs.NewJSONIter(),
		numbers: codecs.NewJSONIterWith(codecs.JSONIterConfig{UseNumber: true}),
	}
}

func (e *Encoder) resolve() *Encoder {
	if e == nil || e.codec == nil {
		return Default
	}
	return e
}

// Strategies reports the date, data and key strategies of the encoder.
func (e *Encoder) Strategies() (DateStrategy, DataStrategy, KeyStrategy) {
	e = e.resolve()
	return e.cfg.date, e.cfg.data, e.cfg.keys
}

// Pack encodes v as JSON.
func (e *Encoder) Pack(v any) ([]byte, error) {
	e = e.resolve()
	data, err := e.codec.Marshal(v)
	if err != nil {
		return nil, e.fail(&EncodingError{Type: typeName(v), Err: err})
	}
	return data, nil
}

// Tree encodes v and parses the result with DefaultParseOptions.
func (e *Encoder) Tree(v any) (any, error) {
	return e.TreeWith(v, DefaultParseOptions)
}

// TreeWith encodes v and parses the result into a map[string]any, []any or
// scalar according to opts.
func (e *Encoder) TreeWith(v any, opts ParseOptions) (any, error) {
	e = e.resolve()
	data, err := e.Pack(v)
	if err != nil {
		return nil, err
	}
	return e.parse(typeName(v), data, opts)
}

// Unpack decodes data produced by Pack into v, which must be a non-nil pointer.
func (e *Encoder) Unpack(data []byte, v any) error {
	e = e.resolve()
	if err := e.codec.Unmarshal(data, v); err != nil {
		return e.fail(&ParsingError{Type: typeName(v), Err: err})
	}
	return nil
}

// YAML encodes v, parses it into a tree and writes the tree as YAML.
func (e *Encoder) YAML(v any) ([]byte, error) {
	e = e.resolve()
	tree, err := e.Tree(v)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, e.fail(&EncodingError{Type: typeName(v), Err: fmt.Errorf("yaml: %w", err)})
	}
	return out, nil
}

func (e *Encoder) parse(name string, data []byte, opts ParseOptions) (any, error) {
	if !opts.AllowFragments && !isContainer(data) {
		return nil, e.fail(&ParsingError{Type: name, Err: errFragment})
	}

	parser := e.trees
	if opts.UseNumber {
		parser = e.numbers
	}

	var tree any
	if err := parser.Unmarshal(data, &tree); err != nil {
		return nil, e.fail(&ParsingError{Type: name, Err: err})
	}
	return tree, nil
}

func (e *Encoder) fail(err error) error {
	e.cfg.logger.Debug("packable conversion failed", slog.Any("error", err))
	return err
}
