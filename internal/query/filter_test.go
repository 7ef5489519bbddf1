package query

import (
	"errors"
	"reflect"
	"testing"
)

var testFields = NewFields(
	[]string{"email", "status", "category", "created_at"},
	[]string{"rating", "downloads"},
)

func TestBuildSimpleConditions(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		wantSQL  string
		wantArgs []any
	}{
		{"eq", Eq("status", "ACTIVE"), "status = ?", []any{"ACTIVE"}},
		{"ne", Ne("category", "icons"), "category <> ?", []any{"icons"}},
		{"gt", Gt("rating", 4.0), "rating > ?", []any{4.0}},
		{"gte", Gte("downloads", 100), "downloads >= ?", []any{100}},
		{"lt", Lt("rating", 2.5), "rating < ?", []any{2.5}},
		{"lte", Lte("downloads", 10), "downloads <= ?", []any{10}},
		{"contains", Contains("email", "gmail"), "email LIKE ?", []any{"%gmail%"}},
		{"prefix", HasPrefix("email", "admin"), "email LIKE ?", []any{"admin%"}},
		{"suffix", HasSuffix("email", ".dev"), "email LIKE ?", []any{"%.dev"}},
		{"in", In("status", "ACTIVE", "INACTIVE"), "status IN ?", []any{[]any{"ACTIVE", "INACTIVE"}}},
		{"in empty", In("status"), "1 = 0", nil},
		{"is null", IsNull("category"), "category IS NULL", nil},
		{"not null", NotNull("category"), "category IS NOT NULL", nil},
		{"eq nil", Eq("category", nil), "category IS NULL", nil},
		{"ne nil", Ne("category", nil), "category IS NOT NULL", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := Build(tt.filter, testFields)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildComposite(t *testing.T) {
	f := And(
		Eq("status", "ACTIVE"),
		Or(
			Gt("rating", 4.5),
			Gte("downloads", 1000),
		),
		Not(Eq("category", "deprecated")),
	)

	sql, args, err := Build(f, testFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "(status = ? AND (rating > ? OR downloads >= ?) AND NOT (category = ?))"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	wantArgs := []any{"ACTIVE", 4.5, 1000, "deprecated"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %#v, want %#v", args, wantArgs)
	}
}

func TestBuildEmptyComposites(t *testing.T) {
	sql, _, err := Build(And(), testFields)
	if err != nil || sql != "1 = 1" {
		t.Errorf("And() = %q, %v; want \"1 = 1\", nil", sql, err)
	}
	sql, _, err = Build(Or(), testFields)
	if err != nil || sql != "1 = 0" {
		t.Errorf("Or() = %q, %v; want \"1 = 0\", nil", sql, err)
	}
}

func TestBuildNilFilter(t *testing.T) {
	sql, args, err := Build(nil, testFields)
	if err != nil || sql != "" || args != nil {
		t.Errorf("Build(nil) = %q, %v, %v; want empty", sql, args, err)
	}
}

func TestBuildUnknownField(t *testing.T) {
	_, _, err := Build(Eq("password_hash", "x"), testFields)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}

	// Unknown fields surface even when buried in a composite.
	_, _, err = Build(And(Eq("status", "ACTIVE"), Not(Gt("nope", 1))), testFields)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField from nested filter, got %v", err)
	}
}

func TestEscapeLike(t *testing.T) {
	sql, args, err := Build(Contains("email", "50%_a\\b"), testFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sql != "email LIKE ?" {
		t.Errorf("sql = %q", sql)
	}
	want := `%50\%\_a\\b%`
	if args[0] != want {
		t.Errorf("escaped needle = %q, want %q", args[0], want)
	}
}
