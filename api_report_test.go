package gomold_test

import (
	"context"
	"encoding/json"
	"testing"

	gomold "github.com/reoring/gomold"
	"github.com/reoring/gomold/dsl"
)

func TestDecodeWithReport_Outcomes(t *testing.T) {
	p, rep, err := gomold.DecodeWithReport[Product](context.Background(), map[string]any{
		"sku":    "R-1",
		"price":  json.Number("1"),
		"count":  json.Number("2"),
		"active": true,
		"tags":   []any{},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "unnamed" {
		t.Fatalf("name: got %q", p.Name)
	}
	checks := map[string]gomold.Outcome{
		"SKU":     gomold.OutcomeAssigned,
		"Name":    gomold.OutcomeDefaultedOnFailure,
		"Comment": gomold.OutcomeSkippedOptional,
		"Tags":    gomold.OutcomeAssigned,
	}
	for field, want := range checks {
		if got := rep[field]; got != want {
			t.Fatalf("report[%s]: got %v want %v", field, got, want)
		}
	}
}

func TestDecodeWithReport_OptionalWithDefault(t *testing.T) {
	type Banner struct {
		Text *string `json:"text"`
	}
	if _, err := dsl.Bind[Banner](dsl.Struct().
		Field("text", dsl.String()).Default("hello")); err != nil {
		t.Fatalf("bind: %v", err)
	}
	b, rep, err := gomold.DecodeWithReport[Banner](context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := rep["Text"]; got != gomold.OutcomeSkippedOptional {
		t.Fatalf("report[Text]: got %v want %v", got, gomold.OutcomeSkippedOptional)
	}
	if b.Text == nil || *b.Text != "hello" {
		t.Fatalf("default must survive the skip, got %v", b.Text)
	}
}

func TestReport_OnFailureCoversReachedFields(t *testing.T) {
	_, rep, err := gomold.DecodeWithReport[Product](context.Background(), map[string]any{
		"sku": true, // first declared field fails
	})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if _, ok := rep["SKU"]; ok {
		t.Fatalf("failed field must not report an outcome, got %v", rep["SKU"])
	}
}

func TestOutcome_String(t *testing.T) {
	cases := []struct {
		o    gomold.Outcome
		want string
	}{
		{gomold.OutcomeNotDecoded, "not_decoded"},
		{gomold.OutcomeAssigned, "assigned"},
		{gomold.OutcomeSkippedOptional, "skipped_optional"},
		{gomold.OutcomeDefaultedOnFailure, "defaulted_on_failure"},
	}
	for _, c := range cases {
		if got := c.o.String(); got != c.want {
			t.Fatalf("got %q want %q", got, c.want)
		}
	}
}
