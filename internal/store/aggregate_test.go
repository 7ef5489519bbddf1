package store

import (
	"context"
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
)

// The usage-error paths below are all rejected before any SQL is issued, so
// the stores can run against a nil handle.

func TestGroupByRejectsOrderOutsideBy(t *testing.T) {
	kits := NewUIKitStore(nil)

	// Ordering by rating while bucketing by category is a caller bug.
	_, err := kits.GroupBy(context.Background(), GroupBySpec{
		By:     []string{"category"},
		Orders: []query.Order{{Field: "rating"}},
	})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestGroupByRejectsHavingOutsideBy(t *testing.T) {
	kits := NewUIKitStore(nil)

	_, err := kits.GroupBy(context.Background(), GroupBySpec{
		By:     []string{"category"},
		Having: query.Gt("downloads", 100),
	})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestGroupByRejectsEmptyBy(t *testing.T) {
	kits := NewUIKitStore(nil)

	_, err := kits.GroupBy(context.Background(), GroupBySpec{Agg: Aggregation{Count: true}})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestGroupByHavingOnAggregateAlias(t *testing.T) {
	kits := NewUIKitStore(nil)

	sql, args, err := kits.havingClause(GroupBySpec{
		By:     []string{"category"},
		Having: query.Gt("agg_count", 5),
		Agg:    Aggregation{Count: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// HAVING can't see SELECT aliases, so the clause carries the expression.
	if sql != "COUNT(*) > ?" {
		t.Errorf("sql = %q, want %q", sql, "COUNT(*) > ?")
	}
	if len(args) != 1 || args[0] != 5 {
		t.Errorf("args = %v, want [5]", args)
	}
}

func TestGroupByHavingMixesKeysAndAggregates(t *testing.T) {
	kits := NewUIKitStore(nil)

	sql, args, err := kits.havingClause(GroupBySpec{
		By: []string{"category"},
		Having: query.And(
			query.Ne("category", "Icons"),
			query.Gte("avg_rating", 4.0),
			query.Gt("sum_downloads", 100),
		),
		Agg: Aggregation{Avg: []string{"rating"}, Sum: []string{"downloads"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "(category <> ? AND AVG(rating) >= ? AND SUM(downloads) > ?)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 3 {
		t.Errorf("args = %v, want 3 values", args)
	}
}

func TestGroupByHavingRejectsUncomputedAggregate(t *testing.T) {
	kits := NewUIKitStore(nil)

	// avg_rating is only a valid alias when the request computes it.
	_, err := kits.GroupBy(context.Background(), GroupBySpec{
		By:     []string{"category"},
		Having: query.Gte("avg_rating", 4.0),
		Agg:    Aggregation{Count: true},
	})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestGroupByRejectsUnknownByField(t *testing.T) {
	kits := NewUIKitStore(nil)

	_, err := kits.GroupBy(context.Background(), GroupBySpec{By: []string{"publisher"}})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestAggregateRejectsNonNumericField(t *testing.T) {
	kits := NewUIKitStore(nil)

	_, err := kits.Aggregate(context.Background(), nil, Aggregation{Avg: []string{"title"}})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestAggregateRejectsEmptyAggregation(t *testing.T) {
	kits := NewUIKitStore(nil)

	_, err := kits.Aggregate(context.Background(), nil, Aggregation{})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestAggSelectsDeterministicOrder(t *testing.T) {
	kits := NewUIKitStore(nil)

	selects, err := kits.aggSelects(Aggregation{
		Count: true,
		Avg:   []string{"rating"},
		Sum:   []string{"downloads"},
		Min:   []string{"likes"},
		Max:   []string{"rating"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"COUNT(*) AS agg_count",
		"AVG(rating) AS avg_rating",
		"SUM(downloads) AS sum_downloads",
		"MIN(likes) AS min_likes",
		"MAX(rating) AS max_rating",
	}
	if len(selects) != len(want) {
		t.Fatalf("got %d selects, want %d: %v", len(selects), len(want), selects)
	}
	for i := range want {
		if selects[i] != want[i] {
			t.Errorf("selects[%d] = %q, want %q", i, selects[i], want[i])
		}
	}
}

func TestParseAggregateRow(t *testing.T) {
	row := map[string]any{
		"agg_count":     int64(12),
		"avg_rating":    4.25,
		"sum_downloads": "3400", // integer SUM comes back as numeric string
	}
	res := parseAggregateRow(row, Aggregation{
		Count: true,
		Avg:   []string{"rating"},
		Sum:   []string{"downloads"},
	})

	if res.Count != 12 {
		t.Errorf("count = %d, want 12", res.Count)
	}
	if res.Avg["rating"] != 4.25 {
		t.Errorf("avg rating = %v, want 4.25", res.Avg["rating"])
	}
	if res.Sum["downloads"] != 3400 {
		t.Errorf("sum downloads = %v, want 3400", res.Sum["downloads"])
	}
}
