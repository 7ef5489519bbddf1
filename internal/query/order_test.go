package query

import (
	"errors"
	"testing"
)

func TestBuildOrder(t *testing.T) {
	got, err := BuildOrder([]Order{
		{Field: "rating", Desc: true},
		{Field: "created_at"},
	}, testFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "rating DESC, created_at ASC"
	if got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestBuildOrderEmpty(t *testing.T) {
	got, err := BuildOrder(nil, testFields)
	if err != nil || got != "" {
		t.Errorf("BuildOrder(nil) = %q, %v; want empty", got, err)
	}
}

func TestBuildOrderUnknownField(t *testing.T) {
	_, err := BuildOrder([]Order{{Field: "secret"}}, testFields)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}
