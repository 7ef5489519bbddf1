package store

import (
	"context"
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
)

func TestUpdateRejectsUnknownField(t *testing.T) {
	users := NewUserStore(nil)

	err := users.Update(context.Background(), 1, map[string]any{"is_admin": true})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestUpdateRejectsEmptyChanges(t *testing.T) {
	users := NewUserStore(nil)

	err := users.Update(context.Background(), 1, map[string]any{})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestListRejectsUnknownFilterField(t *testing.T) {
	payments := NewPaymentStore(nil)

	_, err := payments.List(context.Background(), query.Query{
		Filter: query.Eq("card_number", "4242"),
	})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestListRejectsUnknownOrderField(t *testing.T) {
	kits := NewUIKitStore(nil)

	_, err := kits.List(context.Background(), query.Query{
		Orders: []query.Order{{Field: "popularity"}},
	})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestListRejectsCursorWithForeignOrder(t *testing.T) {
	kits := NewUIKitStore(nil)

	// A keyset cursor pages in key order; another sort column would scramble
	// the pages.
	_, err := kits.List(context.Background(), query.Query{
		Cursor: "0b6f6a2e-0000-0000-0000-000000000000",
		Orders: []query.Order{{Field: "rating", Desc: true}},
	})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestCheckCursorOrders(t *testing.T) {
	kits := NewUIKitStore(nil)

	if err := kits.checkCursorOrders(nil); err != nil {
		t.Errorf("no orders: %v", err)
	}
	if err := kits.checkCursorOrders([]query.Order{{Field: "id"}}); err != nil {
		t.Errorf("key ascending: %v", err)
	}
	if err := kits.checkCursorOrders([]query.Order{{Field: "id", Desc: true}}); err == nil {
		t.Error("key descending must be rejected")
	}
	if err := kits.checkCursorOrders([]query.Order{{Field: "id"}, {Field: "title"}}); err == nil {
		t.Error("secondary sort must be rejected")
	}
}

func TestWhereOrAll(t *testing.T) {
	// A nil filter builds to an empty fragment; the many-row ops substitute a
	// match-all condition so gorm's missing-WHERE guard never fires.
	if got, _, _ := query.Build(nil, userFields); got != "" {
		t.Fatalf("Build(nil) = %q, want empty", got)
	}
	if got := whereOrAll(""); got != "1 = 1" {
		t.Errorf("whereOrAll(\"\") = %q, want \"1 = 1\"", got)
	}
	if got := whereOrAll("status = ?"); got != "status = ?" {
		t.Errorf("whereOrAll must pass real fragments through, got %q", got)
	}
}

func TestCreateManyEmptyBatch(t *testing.T) {
	likes := NewLikeStore(nil)

	n, err := likes.CreateMany(context.Background(), nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("inserted = %d, want 0", n)
	}
}

func TestMapError(t *testing.T) {
	if got := mapError(nil); got != nil {
		t.Errorf("mapError(nil) = %v", got)
	}

	opaque := errors.New("connection reset")
	if got := mapError(opaque); !errors.Is(got, opaque) {
		t.Errorf("opaque errors must propagate unchanged, got %v", got)
	}
}
