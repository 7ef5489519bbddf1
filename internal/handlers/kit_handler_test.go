package handlers

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/dto"
)

func TestParseOrders(t *testing.T) {
	orders, err := parseOrders("rating:desc,created_at:asc,title")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("got %d orders, want 3", len(orders))
	}
	if orders[0].Field != "rating" || !orders[0].Desc {
		t.Errorf("orders[0] = %+v, want rating desc", orders[0])
	}
	if orders[1].Field != "created_at" || orders[1].Desc {
		t.Errorf("orders[1] = %+v, want created_at asc", orders[1])
	}
	// Bare field defaults to ascending.
	if orders[2].Field != "title" || orders[2].Desc {
		t.Errorf("orders[2] = %+v, want title asc", orders[2])
	}
}

func TestParseOrdersRejectsBadDirection(t *testing.T) {
	if _, err := parseOrders("rating:down"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}

func TestParseOrdersEmpty(t *testing.T) {
	orders, err := parseOrders("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders != nil {
		t.Fatalf("got %v, want nil", orders)
	}
}

func TestKitChangesOnlySetFields(t *testing.T) {
	title := "Dashboard Pro"
	rating := 4.5
	changes := kitChanges(&dto.UpdateKitRequest{Title: &title, Rating: &rating})

	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2: %v", len(changes), changes)
	}
	if changes["title"] != "Dashboard Pro" {
		t.Errorf("title = %v", changes["title"])
	}
	if changes["rating"] != 4.5 {
		t.Errorf("rating = %v", changes["rating"])
	}
}

func TestKitChangesEmptyRequest(t *testing.T) {
	if changes := kitChanges(&dto.UpdateKitRequest{}); len(changes) != 0 {
		t.Fatalf("got %v, want empty", changes)
	}
}
