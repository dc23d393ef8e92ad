package codecs_test

import (
	"testing"
	"time"

	"github.com/ripkitten-co/packable/internal/codecs"
)

type event struct {
	EventName string
	CreatedAt time.Time
	DeletedAt *time.Time
	Payload   []byte
	Label     string `json:"labelText"`
	Hidden    string `json:"-"`
	internal  string
}

func newDefault() codecs.Codec {
	return codecs.NewJSONIter(codecs.Extensions(codecs.DateSecondsSince1970, codecs.DataBase64, codecs.KeySnakeCase)...)
}

func TestExtensions_DefaultStrategies(t *testing.T) {
	c := newDefault()
	doc := event{
		EventName: "signup",
		CreatedAt: time.Unix(0, 0),
		Payload:   []byte{0x01, 0x02},
		Label:     "l",
		Hidden:    "h",
		internal:  "i",
	}

	data, err := c.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"event_name":"signup","created_at":0,"deleted_at":null,"payload":"AQI=","labelText":"l"}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestExtensions_PointerTime(t *testing.T) {
	c := newDefault()
	deleted := time.Unix(1700000000, 0)

	data, err := c.Marshal(event{DeletedAt: &deleted})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"event_name":"","created_at":-62135596800,"deleted_at":1700000000,"payload":null,"labelText":""}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestExtensions_FractionalSeconds(t *testing.T) {
	c := newDefault()
	type doc struct{ At time.Time }

	data, err := c.Marshal(doc{At: time.Unix(10, int64(500*time.Millisecond))})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"at":10.5}` {
		t.Errorf("got %s", data)
	}
}

func TestExtensions_Milliseconds(t *testing.T) {
	c := codecs.NewJSONIter(codecs.Extensions(codecs.DateMillisecondsSince1970, codecs.DataBase64, codecs.KeySnakeCase)...)
	type doc struct{ At time.Time }

	data, err := c.Marshal(doc{At: time.Unix(1, int64(250*time.Millisecond))})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"at":1250}` {
		t.Errorf("got %s", data)
	}
}

func TestExtensions_RFC3339(t *testing.T) {
	c := codecs.NewJSONIter(codecs.Extensions(codecs.DateRFC3339, codecs.DataBase64, codecs.KeySnakeCase)...)
	type doc struct{ At time.Time }

	data, err := c.Marshal(doc{At: time.Unix(0, 0).UTC()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"at":"1970-01-01T00:00:00Z"}` {
		t.Errorf("got %s", data)
	}

	var got doc
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.At.Equal(time.Unix(0, 0)) {
		t.Errorf("At = %v, want epoch", got.At)
	}
}

func TestExtensions_Hex(t *testing.T) {
	c := codecs.NewJSONIter(codecs.Extensions(codecs.DateSecondsSince1970, codecs.DataHex, codecs.KeySnakeCase)...)
	type doc struct{ RawBytes []byte }

	data, err := c.Marshal(doc{RawBytes: []byte{0xde, 0xad}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"raw_bytes":"dead"}` {
		t.Errorf("got %s", data)
	}

	var got doc
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(got.RawBytes) != "\xde\xad" {
		t.Errorf("RawBytes = %x, want dead", got.RawBytes)
	}
}

func TestExtensions_HexDecodeError(t *testing.T) {
	c := codecs.NewJSONIter(&codecs.HexExtension{})
	type doc struct{ Raw []byte }

	var got doc
	if err := c.Unmarshal([]byte(`{"Raw":"zz"}`), &got); err == nil {
		t.Fatal("expected error for invalid hex")
	}
}

func TestExtensions_CamelKeys(t *testing.T) {
	c := codecs.NewJSONIter(codecs.Extensions(codecs.DateDeferred, codecs.DataBase64, codecs.KeyCamelCase)...)
	type doc struct {
		FirstName  string
		HTTPStatus int
	}

	data, err := c.Marshal(doc{FirstName: "Ada", HTTPStatus: 200})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"firstName":"Ada","httpStatus":200}` {
		t.Errorf("got %s", data)
	}
}

func TestExtensions_UnmarshalRoundTrip(t *testing.T) {
	c := newDefault()
	created := time.Unix(1700000000, 0).UTC()
	original := event{EventName: "login", CreatedAt: created, Payload: []byte("hi"), Label: "x"}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got event
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.EventName != original.EventName {
		t.Errorf("EventName = %q, want %q", got.EventName, original.EventName)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if got.DeletedAt != nil {
		t.Errorf("DeletedAt = %v, want nil", got.DeletedAt)
	}
	if string(got.Payload) != "hi" {
		t.Errorf("Payload = %q, want %q", got.Payload, "hi")
	}
	if got.Label != "x" {
		t.Errorf("Label = %q, want %q", got.Label, "x")
	}
}

func TestExtensions_UnmarshalFractionalSeconds(t *testing.T) {
	c := newDefault()
	type doc struct{ At time.Time }

	var got doc
	if err := c.Unmarshal([]byte(`{"at":10.5}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Unix(10, int64(500*time.Millisecond))
	if !got.At.Equal(want) {
		t.Errorf("At = %v, want %v", got.At, want)
	}
}

func TestExtensions_EpochRoundTrip(t *testing.T) {
	instants := map[string]time.Time{
		"zero":         {},
		"pre-epoch":    time.Unix(-1, int64(500*time.Millisecond)),
		"epoch":        time.Unix(0, 0),
		"recent":       time.Unix(1700000000, 0),
		"year 3000":    time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC),
		"year 3000 ms": time.Date(3000, 6, 15, 12, 30, 0, int(250*time.Millisecond), time.UTC),
		"before 1678":  time.Date(1500, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	strategies := []codecs.DateStrategy{codecs.DateSecondsSince1970, codecs.DateMillisecondsSince1970}

	type doc struct{ At time.Time }

	for _, strategy := range strategies {
		c := codecs.NewJSONIter(codecs.Extensions(strategy, codecs.DataBase64, codecs.KeySnakeCase)...)
		for name, at := range instants {
			t.Run(strategy.String()+"/"+name, func(t *testing.T) {
				data, err := c.Marshal(doc{At: at})
				if err != nil {
					t.Fatalf("marshal: %v", err)
				}

				var got doc
				if err := c.Unmarshal(data, &got); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if !got.At.Equal(at) {
					t.Errorf("At = %v, want %v (encoded %s)", got.At, at, data)
				}
			})
		}
	}
}

func TestExtensions_UnmarshalMilliseconds(t *testing.T) {
	c := codecs.NewJSONIter(codecs.Extensions(codecs.DateMillisecondsSince1970, codecs.DataBase64, codecs.KeySnakeCase)...)
	type doc struct{ At time.Time }

	tests := []struct {
		in   string
		want time.Time
	}{
		{`{"at":1250}`, time.Unix(1, int64(250*time.Millisecond))},
		{`{"at":-500}`, time.Unix(-1, int64(500*time.Millisecond))},
		{`{"at":-62135596800000}`, time.Time{}},
		{`{"at":1.5}`, time.Unix(0, int64(1500*time.Microsecond))},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got doc
			if err := c.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !got.At.Equal(tt.want) {
				t.Errorf("At = %v, want %v", got.At, tt.want)
			}
		})
	}
}
