package gomold_test

import (
	"errors"
	"fmt"
	"testing"

	gomold "github.com/reoring/gomold"
)

func TestError_RenderOutermostFirstIndented(t *testing.T) {
	leaf := gomold.ErrInvalidValue()
	chain := &gomold.Error{
		Code: gomold.CodeDecodeType, Type: "User",
		Cause: &gomold.Error{
			Code: gomold.CodeDecodeProperty, Type: "User", Property: "age", Key: "age",
			Cause: leaf,
		},
	}
	want := "failed to decode type \"User\"\n" +
		"  failed to decode property \"age\" (key \"age\") of \"User\"\n" +
		"    value does not match the expected type"
	if got := chain.Error(); got != want {
		t.Fatalf("render mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestError_RenderWrappedExternal(t *testing.T) {
	ext := errors.New("boom")
	chain := gomold.WrapError(ext)
	want := "wrapped underlying error\n  boom"
	if got := chain.Error(); got != want {
		t.Fatalf("render mismatch: got %q want %q", got, want)
	}
}

func TestError_UnwrapWalksTheChain(t *testing.T) {
	leaf := gomold.ErrInvalidDate("not-a-date")
	chain := &gomold.Error{
		Code: gomold.CodeDecodeProperty, Type: "Order", Property: "placedAt", Key: "placed_at",
		Cause: leaf,
	}
	if !errors.Is(chain, leaf) {
		t.Fatalf("expected errors.Is to reach the leaf")
	}
	e, ok := gomold.AsError(fmt.Errorf("outer: %w", chain))
	if !ok || e.Code != gomold.CodeDecodeProperty {
		t.Fatalf("expected AsError to find the chain, got %v ok=%v", e, ok)
	}
}

func TestEqualErrors_IgnoresMessages(t *testing.T) {
	a := &gomold.Error{Code: gomold.CodeMissingValue, Message: "english"}
	b := &gomold.Error{Code: gomold.CodeMissingValue, Message: "日本語"}
	if !gomold.EqualErrors(a, b) {
		t.Fatalf("expected equality across messages")
	}
}

func TestEqualErrors_StructuralFields(t *testing.T) {
	mk := func(prop string) error {
		return &gomold.Error{
			Code: gomold.CodeDecodeType, Type: "User",
			Cause: &gomold.Error{Code: gomold.CodeDecodeProperty, Type: "User", Property: prop, Key: prop,
				Cause: gomold.ErrMissingValue()},
		}
	}
	if !gomold.EqualErrors(mk("name"), mk("name")) {
		t.Fatalf("expected identical chains to be equal")
	}
	if gomold.EqualErrors(mk("name"), mk("email")) {
		t.Fatalf("expected chains differing in property to be unequal")
	}
}

func TestEqualErrors_WrappedComparesByPresence(t *testing.T) {
	a := gomold.WrapError(errors.New("one"))
	b := gomold.WrapError(errors.New("two"))
	if !gomold.EqualErrors(a, b) {
		t.Fatalf("expected wrapped errors to compare by presence only")
	}
}

func TestEqualErrors_ValidationValue(t *testing.T) {
	a := gomold.ErrValidationFailed("User", "age", 7)
	b := gomold.ErrValidationFailed("User", "age", 7)
	c := gomold.ErrValidationFailed("User", "age", 8)
	if !gomold.EqualErrors(a, b) {
		t.Fatalf("expected same value to be equal")
	}
	if gomold.EqualErrors(a, c) {
		t.Fatalf("expected differing values to be unequal")
	}
}

func TestWrapError_PassesChainLinksThrough(t *testing.T) {
	leaf := gomold.ErrInvalidValue()
	if got := gomold.WrapError(leaf); got != leaf {
		t.Fatalf("expected pass-through, got %v", got)
	}
	if got := gomold.WrapError(nil); got != nil {
		t.Fatalf("expected nil for nil cause, got %v", got)
	}
}
