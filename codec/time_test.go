package codec

import (
	"context"
	"math"
	"testing"
	"time"

	gomold "github.com/reoring/gomold"
)

func TestISO8601_RoundTrip(t *testing.T) {
	c := ISO8601()
	ctx := context.Background()

	in := "2026-03-01T09:30:00+02:00"
	got, err := c.Decode(ctx, in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	want := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("", 2*60*60))
	if !got.Equal(want) {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestISO8601_FractionalInputParses(t *testing.T) {
	c := ISO8601()
	ctx := context.Background()

	got, err := c.Decode(ctx, "2026-03-01T09:30:00.25Z")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if got.Nanosecond() != 250000000 {
		t.Fatalf("unexpected fraction: %v", got)
	}
	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2026-03-01T09:30:00Z" {
		t.Fatalf("fraction should be dropped on encode: %s", out)
	}
}

func TestISO8601Milliseconds_EncodeAlwaysThreeDigits(t *testing.T) {
	c := ISO8601Milliseconds()
	ctx := context.Background()

	got, err := c.Decode(ctx, "2026-03-01T09:30:00Z")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2026-03-01T09:30:00.000Z" {
		t.Fatalf("unexpected encode: %s", out)
	}

	got, err = c.Decode(ctx, "2026-03-01T09:30:00.123Z")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	out, err = c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2026-03-01T09:30:00.123Z" {
		t.Fatalf("unexpected encode: %s", out)
	}
}

func TestRFC2822_RoundTrip(t *testing.T) {
	c := RFC2822()
	ctx := context.Background()

	in := "Mon, 02 Mar 2026 15:04:05 +0000"
	got, err := c.Decode(ctx, in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 2 {
		t.Fatalf("unexpected time: %v", got)
	}
	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestRFC3339_CanonicalEncode(t *testing.T) {
	c := RFC3339()
	ctx := context.Background()

	got, err := c.Decode(ctx, "2026-01-02T03:04:05.5+01:00")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2026-01-02T02:04:05.5Z" {
		t.Fatalf("expected UTC canonical form, got %s", out)
	}

	got, err = c.Decode(ctx, "2026-01-02T03:04:05Z")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	out, err = c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected encode: %s", out)
	}
}

func TestUnix_FractionalSeconds(t *testing.T) {
	c := Unix()
	ctx := context.Background()

	got, err := c.Decode(ctx, 1700000000.5)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	want := time.Unix(1700000000, 500000000).UTC()
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != 1700000000.5 {
		t.Fatalf("unexpected seconds: %v", out)
	}
}

func TestUnix_Epoch(t *testing.T) {
	c := Unix()
	ctx := context.Background()

	got, err := c.Decode(ctx, 0)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}
}

func TestUnix_FarDatesRoundTrip(t *testing.T) {
	c := Unix()
	ctx := context.Background()

	got, err := c.Decode(ctx, 32503680000)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if want := time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("unexpected time: %v", got)
	}
	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != 32503680000 {
		t.Fatalf("unexpected seconds: %v", out)
	}

	eve := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	out, err = c.Encode(ctx, eve)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != float64(eve.Unix()) {
		t.Fatalf("unexpected seconds: %v", out)
	}
	back, err := c.Decode(ctx, out)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !back.Equal(eve) {
		t.Fatalf("roundtrip mismatch: %v != %v", back, eve)
	}
}

func TestUnix_RejectsUnrepresentableSeconds(t *testing.T) {
	c := Unix()
	ctx := context.Background()
	for _, bad := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), 1e19, -1e19} {
		_, err := c.Decode(ctx, bad)
		me, ok := gomold.AsError(err)
		if !ok || me.Code != gomold.CodeInvalidDate {
			t.Fatalf("%v: unexpected error: %v", bad, err)
		}
	}
}

func TestLayout_BadInput(t *testing.T) {
	c := Layout(time.RFC3339)
	_, err := c.Decode(context.Background(), "not a date")
	if err == nil {
		t.Fatalf("expected error")
	}
	me, ok := gomold.AsError(err)
	if !ok || me.Code != gomold.CodeInvalidDate {
		t.Fatalf("unexpected error: %v", err)
	}
	if me.Source != "not a date" {
		t.Fatalf("source not carried: %q", me.Source)
	}
}

func TestCustom_ParseFormat(t *testing.T) {
	c := Custom(
		func(s string) (time.Time, error) { return time.Parse("2006.01.02", s) },
		func(ts time.Time) string { return ts.Format("2006.01.02") },
	)
	ctx := context.Background()

	got, err := c.Decode(ctx, "2026.08.23")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2026.08.23" {
		t.Fatalf("roundtrip mismatch: %s", out)
	}

	_, err = c.Decode(ctx, "23/08/2026")
	me, ok := gomold.AsError(err)
	if !ok || me.Code != gomold.CodeInvalidDate || me.Source != "23/08/2026" {
		t.Fatalf("unexpected error: %v", err)
	}
}
