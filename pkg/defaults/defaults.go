// Package defaults supplies ready-made zero-argument default factories for
// common field defaults: identifiers and timestamps. The engine treats
// factories as opaque value producers; these are conveniences, not a
// requirement.
package defaults

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-objectmodel/pkg/model"
)

// UUID returns a factory producing canonical UUIDv4 strings.
func UUID() model.Factory {
	return func() any { return uuid.NewString() }
}

// ShortID returns a factory producing the first n characters of a UUIDv4
// string. n is clamped to the canonical 36-character form.
func ShortID(n int) model.Factory {
	return func() any {
		id := uuid.NewString()
		if n <= 0 || n >= len(id) {
			return id
		}
		return id[:n]
	}
}

// UnixNow returns a factory producing the current time as fractional seconds
// since the Unix epoch.
func UnixNow() model.Factory {
	return func() any {
		return float64(time.Now().UnixNano()) / float64(time.Second)
	}
}

// NowRFC3339 returns a factory producing the current UTC time in RFC 3339
// format with nanosecond precision.
func NowRFC3339() model.Factory {
	return func() any {
		return time.Now().UTC().Format(time.RFC3339Nano)
	}
}

// EmptyList returns a factory producing a fresh, empty nested-instance
// sequence, the usual default for list collection fields.
func EmptyList() model.Factory {
	return func() any { return []*model.Instance{} }
}
