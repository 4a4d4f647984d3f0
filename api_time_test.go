package gomold_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	gomold "github.com/reoring/gomold"
	"github.com/reoring/gomold/codec"
	"github.com/reoring/gomold/dsl"
)

type Event struct {
	Name  string     `json:"name"`
	At    time.Time  `json:"at"`
	Until *time.Time `json:"until"`
}

var eventSchema = dsl.MustBind[Event](dsl.Struct().
	Field("name", dsl.String()).
	Field("at", dsl.Time(codec.ISO8601())).
	Field("until", dsl.Time(codec.ISO8601())))

func TestTime_ISO8601Field(t *testing.T) {
	e, err := gomold.Decode[Event](context.Background(), map[string]any{
		"name": "launch",
		"at":   "2026-03-01T09:30:00+01:00",
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("", 3600))
	if !e.At.Equal(want) {
		t.Fatalf("at: got %v want %v", e.At, want)
	}
	if e.Until != nil {
		t.Fatalf("until: expected nil")
	}
}

func TestTime_InvalidDateChain(t *testing.T) {
	_, err := gomold.Decode[Event](context.Background(), map[string]any{
		"name": "x",
		"at":   "tomorrow-ish",
	})
	want := &gomold.Error{
		Code: gomold.CodeDecodeType, Type: "Event",
		Cause: &gomold.Error{
			Code: gomold.CodeDecodeProperty, Type: "Event", Property: "At", Key: "at",
			Cause: &gomold.Error{Code: gomold.CodeInvalidDate, Source: "tomorrow-ish"},
		},
	}
	if !gomold.EqualErrors(err, want) {
		t.Fatalf("error chain mismatch:\n got: %v\nwant: %v", err, want)
	}
}

func TestTime_OptionalSwallowsBadDate(t *testing.T) {
	e, err := gomold.Decode[Event](context.Background(), map[string]any{
		"name":  "y",
		"at":    "2026-03-01T09:30:00Z",
		"until": "not-a-date",
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Until != nil {
		t.Fatalf("until: expected swallowed failure to leave nil")
	}
}

func TestTime_EncodeUsesLayout(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	out, err := gomold.Encode(context.Background(), Event{Name: "z", At: at})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out["at"] != "2026-03-01T09:30:00Z" {
		t.Fatalf("at: got %v", out["at"])
	}
	if _, ok := out["until"]; ok {
		t.Fatalf("nil until must be omitted")
	}
}

func TestTime_UnixSeconds(t *testing.T) {
	type Ping struct {
		Seen time.Time `json:"seen"`
	}
	if _, err := dsl.Bind[Ping](dsl.Struct().
		Field("seen", dsl.UnixTime())); err != nil {
		t.Fatalf("bind: %v", err)
	}
	ctx := context.Background()
	p, err := gomold.Decode[Ping](ctx, map[string]any{"seen": json.Number("1700000000.5")})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Unix(1700000000, 500000000).UTC()
	if !p.Seen.Equal(want) {
		t.Fatalf("seen: got %v want %v", p.Seen, want)
	}
	out, err := gomold.Encode(ctx, p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out["seen"] != 1700000000.5 {
		t.Fatalf("wire: got %v", out["seen"])
	}
}

func TestTime_DerivedSchemaUsesRFC3339(t *testing.T) {
	type LogLine struct {
		At  time.Time `json:"at"`
		Msg string    `json:"msg"`
	}
	ctx := context.Background()
	l, err := gomold.Decode[LogLine](ctx, map[string]any{
		"at":  "2026-01-02T03:04:05Z",
		"msg": "hi",
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.At.Year() != 2026 || l.At.Minute() != 4 {
		t.Fatalf("at: got %v", l.At)
	}
	out, err := gomold.Encode(ctx, l)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out["at"] != "2026-01-02T03:04:05Z" {
		t.Fatalf("wire: got %v", out["at"])
	}
}
