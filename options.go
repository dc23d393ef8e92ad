package packable

import (
	"log/slog"

	"github.com/ripkitten-co/packable/internal/codecs"
)

// DateStrategy controls how time.Time values are encoded.
type DateStrategy = codecs.DateStrategy

const (
	// DateSecondsSince1970 writes the number of seconds since the Unix epoch,
	// with a fractional part when the instant has sub-second precision.
	DateSecondsSince1970 = codecs.DateSecondsSince1970
	// DateMillisecondsSince1970 writes the number of milliseconds since the Unix epoch.
	DateMillisecondsSince1970 = codecs.DateMillisecondsSince1970
	// DateRFC3339 writes an RFC 3339 string with nanosecond precision.
	DateRFC3339 = codecs.DateRFC3339
	// DateDeferred uses time.Time's own JSON encoding.
	DateDeferred = codecs.DateDeferred
)

// DataStrategy controls how []byte values are encoded.
type DataStrategy = codecs.DataStrategy

const (
	// DataBase64 writes standard padded base64 text.
	DataBase64 = codecs.DataBase64
	// DataHex writes lowercase hex text.
	DataHex = codecs.DataHex
)

// KeyStrategy controls how struct field names become object keys. Fields
// with an explicit json tag name always keep that name.
type KeyStrategy = codecs.KeyStrategy

const (
	// KeySnakeCase writes FirstName as first_name.
	KeySnakeCase = codecs.KeySnakeCase
	// KeyCamelCase writes FirstName as firstName.
	KeyCamelCase = codecs.KeyCamelCase
	// KeyUseDefault writes the Go field name unchanged.
	KeyUseDefault = codecs.KeyUseDefault
)

// Option configures an Encoder built by New.
type Option func(*encoderConfig)

type encoderConfig struct {
	date   DateStrategy
	data   DataStrategy
	keys   KeyStrategy
	logger *slog.Logger
}

func defaultConfig() *encoderConfig {
	return &encoderConfig{
		date:   DateSecondsSince1970,
		data:   DataBase64,
		keys:   KeySnakeCase,
		logger: slog.Default(),
	}
}

// WithDateStrategy sets how time.Time values are encoded.
func WithDateStrategy(s DateStrategy) Option {
	return func(cfg *encoderConfig) {
		cfg.date = s
	}
}

// WithDataStrategy sets how []byte values are encoded.
func WithDataStrategy(s DataStrategy) Option {
	return func(cfg *encoderConfig) {
		cfg.data = s
	}
}

// WithKeyStrategy sets how untagged struct field names become keys.
func WithKeyStrategy(s KeyStrategy) Option {
	return func(cfg *encoderConfig) {
		cfg.keys = s
	}
}

// WithLogger sets the logger that receives debug records for failed
// conversions. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *encoderConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}
