package codecs

import (
	"math"
	"reflect"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.PointerTo(timeType)
)

// DateExtension encodes time.Time and *time.Time according to Strategy.
// *time.Time is claimed explicitly because jsoniter would otherwise pick
// its json.Marshaler implementation before consulting the element type.
type DateExtension struct {
	jsoniter.DummyExtension
	Strategy DateStrategy
}

func (e *DateExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	switch typ.Type1() {
	case timeType:
		return &timeCodec{strategy: e.Strategy}
	case timePtrType:
		return &jsoniter.OptionalEncoder{ValueEncoder: &timeCodec{strategy: e.Strategy}}
	}
	return nil
}

func (e *DateExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() != timeType {
		return nil
	}
	return &timeCodec{strategy: e.Strategy}
}

type timeCodec struct {
	strategy DateStrategy
}

func (c *timeCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

func (c *timeCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *(*time.Time)(ptr)
	switch c.strategy {
	case DateMillisecondsSince1970:
		ms := t.UnixMilli()
		if rem := t.Nanosecond() % int(time.Millisecond); rem != 0 {
			stream.WriteFloat64(float64(ms) + float64(rem)/float64(time.Millisecond))
			return
		}
		stream.WriteInt64(ms)
	case DateRFC3339:
		stream.WriteString(t.Format(time.RFC3339Nano))
	default:
		if ns := t.Nanosecond(); ns != 0 {
			stream.WriteFloat64(float64(t.Unix()) + float64(ns)/float64(time.Second))
			return
		}
		stream.WriteInt64(t.Unix())
	}
}

func (c *timeCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.ReadNil() {
		*(*time.Time)(ptr) = time.Time{}
		return
	}
	switch c.strategy {
	case DateMillisecondsSince1970:
		*(*time.Time)(ptr) = fromEpoch(iter.ReadFloat64(), time.Millisecond)
	case DateRFC3339:
		s := iter.ReadString()
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			iter.ReportError("decode time", err.Error())
			return
		}
		*(*time.Time)(ptr) = t
	default:
		*(*time.Time)(ptr) = fromEpoch(iter.ReadFloat64(), time.Second)
	}
}

// fromEpoch splits v into whole seconds and nanoseconds before building the
// time; a single nanosecond count overflows int64 outside 1678..2262.
func fromEpoch(v float64, unit time.Duration) time.Time {
	whole, frac := math.Modf(v)
	perSec := int64(time.Second / unit)
	n := int64(whole)
	sec, rem := n/perSec, n%perSec
	nsec := rem*int64(unit) + int64(math.Round(frac*float64(unit)))
	return time.Unix(sec, nsec).UTC()
}
