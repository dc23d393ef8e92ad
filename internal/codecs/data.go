package codecs

import (
	"encoding/hex"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

var bytesType = reflect.TypeOf([]byte(nil))

// HexExtension writes []byte as lowercase hex text instead of jsoniter's
// native base64. Named byte slices such as json.RawMessage are left alone.
type HexExtension struct {
	jsoniter.DummyExtension
}

func (e *HexExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() != bytesType {
		return nil
	}
	return hexCodec{}
}

func (e *HexExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() != bytesType {
		return nil
	}
	return hexCodec{}
}

type hexCodec struct{}

func (hexCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return len(*(*[]byte)(ptr)) == 0
}

func (hexCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	b := *(*[]byte)(ptr)
	if b == nil {
		stream.WriteNil()
		return
	}
	stream.WriteString(hex.EncodeToString(b))
}

func (hexCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.ReadNil() {
		*(*[]byte)(ptr) = nil
		return
	}
	b, err := hex.DecodeString(iter.ReadString())
	if err != nil {
		iter.ReportError("decode hex", err.Error())
		return
	}
	*(*[]byte)(ptr) = b
}
