package codec

import (
	"context"
	"math"
	"strconv"
	"time"

	gomold "github.com/reoring/gomold"
)

const iso8601Milli = "2006-01-02T15:04:05.000Z07:00"

// Layout returns a string transformer for an explicit time layout in the
// reference-time notation of the time package. Text that does not parse
// surfaces as an invalid date carrying the offending input.
func Layout(layout string) gomold.Transformer[string, time.Time] {
	return layoutTransformer{layouts: []string{layout}, format: layout}
}

// ISO8601 handles "2006-01-02T15:04:05Z07:00" timestamps. Fractional
// seconds in the input parse fine; encoding omits them.
func ISO8601() gomold.Transformer[string, time.Time] {
	return Layout(time.RFC3339)
}

// ISO8601Milliseconds is ISO8601 with exactly three fractional digits on
// encode.
func ISO8601Milliseconds() gomold.Transformer[string, time.Time] {
	return layoutTransformer{layouts: []string{iso8601Milli, time.RFC3339}, format: iso8601Milli}
}

// RFC2822 handles "Mon, 02 Jan 2006 15:04:05 -0700" timestamps.
func RFC2822() gomold.Transformer[string, time.Time] {
	return Layout(time.RFC1123Z)
}

// RFC3339 parses RFC 3339 text with or without fractional seconds and
// encodes the canonical form: UTC, trailing zeros trimmed.
func RFC3339() gomold.Transformer[string, time.Time] {
	return rfc3339{}
}

// Unix converts numeric seconds since the epoch, fractional part
// included, to UTC instants. Seconds outside the int64 range, or not
// finite, are invalid dates.
func Unix() gomold.Transformer[float64, time.Time] {
	return unix{}
}

// Custom builds a transformer from explicit parse and format functions.
// Parse failures are reported as an invalid date with the offending text.
func Custom(parse func(string) (time.Time, error), format func(time.Time) string) gomold.Transformer[string, time.Time] {
	return custom{parse: parse, format: format}
}

type layoutTransformer struct {
	layouts []string // tried in order when parsing
	format  string
}

func (t layoutTransformer) Decode(_ context.Context, wire string) (time.Time, error) {
	for _, l := range t.layouts {
		if ts, err := time.Parse(l, wire); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, gomold.ErrInvalidDate(wire)
}

func (t layoutTransformer) Encode(_ context.Context, value time.Time) (string, error) {
	return value.Format(t.format), nil
}

type rfc3339 struct{}

func (rfc3339) Decode(_ context.Context, wire string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, wire)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, wire); err2 == nil {
			return t2, nil
		}
		return time.Time{}, gomold.ErrInvalidDate(wire)
	}
	return t, nil
}

func (rfc3339) Encode(_ context.Context, value time.Time) (string, error) {
	return value.UTC().Format(time.RFC3339Nano), nil
}

type unix struct{}

func (unix) Decode(_ context.Context, wire float64) (time.Time, error) {
	if math.IsNaN(wire) || math.Abs(wire) >= math.MaxInt64 {
		return time.Time{}, gomold.ErrInvalidDate(strconv.FormatFloat(wire, 'g', -1, 64))
	}
	sec, frac := math.Modf(wire)
	return time.Unix(int64(sec), int64(math.Round(frac*float64(time.Second)))).UTC(), nil
}

func (unix) Encode(_ context.Context, value time.Time) (float64, error) {
	// UnixNano only covers the years 1678 through 2262.
	return float64(value.Unix()) + float64(value.Nanosecond())/float64(time.Second), nil
}

type custom struct {
	parse  func(string) (time.Time, error)
	format func(time.Time) string
}

func (c custom) Decode(_ context.Context, wire string) (time.Time, error) {
	t, err := c.parse(wire)
	if err != nil {
		return time.Time{}, gomold.ErrInvalidDate(wire)
	}
	return t, nil
}

func (c custom) Encode(_ context.Context, value time.Time) (string, error) {
	return c.format(value), nil
}
