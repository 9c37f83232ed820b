package codec

import (
	"context"
	"time"

	"github.com/reoring/lensmeta"
)

// DateTime returns a Codec converting between ISO-8601 date-time strings
// (RFC3339 profile, timezone designator required) and time.Time.
func DateTime() lensmeta.Codec[string, time.Time] { return dateTimeCodec{} }

type dateTimeCodec struct{}

func (dateTimeCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := ParseDateTime(a)
	if err != nil {
		return time.Time{}, lensmeta.Issues{{Code: lensmeta.CodeInvalidFormat, Message: "Invalid datetime", Cause: err}}
	}
	return t, nil
}

func (dateTimeCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	if b.IsZero() {
		return "", lensmeta.Issues{{Code: lensmeta.CodeRequired, Message: "Required"}}
	}
	return FormatDateTime(b), nil
}

// ParseDateTime accepts RFC3339 with or without fractional seconds.
func ParseDateTime(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

// FormatDateTime renders t in UTC using RFC3339Nano (trailing zeros trimmed).
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
