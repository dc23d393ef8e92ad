// Package packable converts any value into JSON bytes and into a generic tree
// of maps, slices and scalars through a shared, preconfigured encoder.
//
// The default encoder writes dates as seconds since the Unix epoch, binary
// data as base64 text and struct field names in snake_case:
//
//	type User struct {
//		FirstName string
//		CreatedAt time.Time
//	}
//
//	tree, err := packable.Tree(User{FirstName: "Ada"})
//	// map[string]any{"first_name": "Ada", "created_at": -62135596800}
//
// Key strategies rename struct fields only. Map keys are written as they are,
// so map[string]any{"firstName": 1} keeps "firstName" under every strategy.
//
// Types that need different strategies implement Packable.
package packable

// Packable is implemented by values that choose their own Encoder. Pack,
// Tree and Unpack use it in place of Default; a nil result falls back to
// Default.
type Packable interface {
	PackEncoder() *Encoder
}

func encoderFor(v any) *Encoder {
	if p, ok := v.(Packable); ok {
		if enc := p.PackEncoder(); enc != nil {
			return enc
		}
	}
	return Default
}

// Pack encodes v with its own encoder when it is Packable, otherwise Default.
func Pack(v any) ([]byte, error) {
	return encoderFor(v).Pack(v)
}

// PackUsing encodes v with enc. A nil enc means Default.
func PackUsing(v any, enc *Encoder) ([]byte, error) {
	return enc.Pack(v)
}

// Tree encodes v like Pack and parses the bytes with DefaultParseOptions.
func Tree(v any) (any, error) {
	return encoderFor(v).Tree(v)
}

// TreeUsing encodes v with enc and parses the bytes with DefaultParseOptions.
func TreeUsing(v any, enc *Encoder) (any, error) {
	return enc.Tree(v)
}

// TreeUsingOptions encodes v with enc and parses the bytes with opts.
func TreeUsingOptions(v any, enc *Encoder, opts ParseOptions) (any, error) {
	return enc.TreeWith(v, opts)
}

// Unpack decodes data into v using the encoder v selects, so that
// Unpack(Pack(x), &y) restores the fields of x.
func Unpack(data []byte, v any) error {
	return encoderFor(v).Unpack(data, v)
}
