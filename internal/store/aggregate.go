package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
)

// Aggregation selects which summary values to compute. Avg/Sum/Min/Max name
// numeric fields of the entity.
type Aggregation struct {
	Count bool
	Avg   []string
	Sum   []string
	Min   []string
	Max   []string
}

func (a Aggregation) empty() bool {
	return !a.Count && len(a.Avg) == 0 && len(a.Sum) == 0 && len(a.Min) == 0 && len(a.Max) == 0
}

type AggregateResult struct {
	Count int64
	Avg   map[string]float64
	Sum   map[string]float64
	Min   map[string]float64
	Max   map[string]float64
}

// GroupBySpec buckets rows by the By fields. Orders may only reference fields
// present in By; Having may additionally reference the aggregate aliases the
// request computes (agg_count, avg_<field>, ...). Violations are usage errors
// caught before any SQL is issued.
type GroupBySpec struct {
	By     []string
	Where  query.Filter
	Having query.Filter
	Orders []query.Order
	Agg    Aggregation
}

// Aggregate computes the requested summaries over the filtered row set.
func (c *core[T]) Aggregate(ctx context.Context, f query.Filter, agg Aggregation) (*AggregateResult, error) {
	selects, err := c.aggSelects(agg)
	if err != nil {
		return nil, err
	}
	if len(selects) == 0 {
		return nil, invalidQuery(errors.New("empty aggregation"))
	}

	where, args, err := query.Build(f, c.fields)
	if err != nil {
		return nil, invalidQuery(err)
	}

	tx := c.model(ctx).Select(strings.Join(selects, ", "))
	if where != "" {
		tx = tx.Where(where, args...)
	}

	row := map[string]any{}
	if err := tx.Take(&row).Error; err != nil {
		return nil, mapError(err)
	}
	return parseAggregateRow(row, agg), nil
}

// GroupBy buckets rows and returns one map per bucket holding the By columns
// plus the aggregate aliases (agg_count, avg_<field>, ...).
func (c *core[T]) GroupBy(ctx context.Context, spec GroupBySpec) ([]map[string]any, error) {
	if len(spec.By) == 0 {
		return nil, invalidQuery(errors.New("group-by needs at least one field"))
	}
	for _, field := range spec.By {
		if !c.fields.Has(field) {
			return nil, invalidQuery(errors.New("unknown field " + field))
		}
	}

	havingSQL, havingArgs, err := c.havingClause(spec)
	if err != nil {
		return nil, err
	}

	// orderBy may only touch the bucket key fields: validate it against a
	// field set reduced to the By list.
	orderBy, err := query.BuildOrder(spec.Orders, query.NewFields(spec.By, nil))
	if err != nil {
		return nil, invalidQuery(err)
	}

	where, args, err := query.Build(spec.Where, c.fields)
	if err != nil {
		return nil, invalidQuery(err)
	}

	aggSelects, err := c.aggSelects(spec.Agg)
	if err != nil {
		return nil, err
	}
	selects := append(append([]string{}, spec.By...), aggSelects...)

	tx := c.model(ctx).Select(strings.Join(selects, ", ")).Group(strings.Join(spec.By, ", "))
	if where != "" {
		tx = tx.Where(where, args...)
	}
	if havingSQL != "" {
		tx = tx.Having(havingSQL, havingArgs...)
	}
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}

	var rows []map[string]any
	if err := tx.Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	return rows, nil
}

// havingClause renders the Having filter. Its vocabulary is the bucket keys
// plus the aliases of the aggregates the request computes; Postgres can't see
// SELECT aliases inside HAVING, so rendered aliases are swapped back to their
// expressions.
func (c *core[T]) havingClause(spec GroupBySpec) (string, []any, error) {
	havingFields := query.NewFields(spec.By, aggAliases(spec.Agg))
	sql, args, err := query.Build(spec.Having, havingFields)
	if err != nil {
		return "", nil, invalidQuery(err)
	}
	return rewriteAggAliases(sql, spec.Agg), args, nil
}

func aggAliases(agg Aggregation) []string {
	var aliases []string
	if agg.Count {
		aliases = append(aliases, "agg_count")
	}
	for _, group := range []struct {
		prefix string
		fields []string
	}{
		{"avg_", agg.Avg},
		{"sum_", agg.Sum},
		{"min_", agg.Min},
		{"max_", agg.Max},
	} {
		for _, field := range group.fields {
			aliases = append(aliases, group.prefix+field)
		}
	}
	return aliases
}

func rewriteAggAliases(sql string, agg Aggregation) string {
	if sql == "" {
		return sql
	}
	type sub struct{ alias, expr string }
	var subs []sub
	if agg.Count {
		subs = append(subs, sub{"agg_count", "COUNT(*)"})
	}
	for _, group := range []struct {
		fn     string
		fields []string
	}{
		{"AVG", agg.Avg},
		{"SUM", agg.Sum},
		{"MIN", agg.Min},
		{"MAX", agg.Max},
	} {
		for _, field := range group.fields {
			subs = append(subs, sub{strings.ToLower(group.fn) + "_" + field, group.fn + "(" + field + ")"})
		}
	}
	// Longest alias first so a prefix alias never clobbers a longer one.
	sort.Slice(subs, func(i, j int) bool { return len(subs[i].alias) > len(subs[j].alias) })
	for _, s := range subs {
		sql = strings.ReplaceAll(sql, s.alias, s.expr)
	}
	return sql
}

func (c *core[T]) aggSelects(agg Aggregation) ([]string, error) {
	var selects []string
	if agg.Count {
		selects = append(selects, "COUNT(*) AS agg_count")
	}
	for _, group := range []struct {
		fn     string
		fields []string
	}{
		{"AVG", agg.Avg},
		{"SUM", agg.Sum},
		{"MIN", agg.Min},
		{"MAX", agg.Max},
	} {
		for _, field := range group.fields {
			if !c.fields.IsNumeric(field) {
				return nil, invalidQuery(errors.New("non-numeric aggregate field " + field))
			}
			alias := strings.ToLower(group.fn) + "_" + field
			selects = append(selects, group.fn+"("+field+") AS "+alias)
		}
	}
	return selects, nil
}

func parseAggregateRow(row map[string]any, agg Aggregation) *AggregateResult {
	res := &AggregateResult{}
	if agg.Count {
		res.Count = int64(toFloat(row["agg_count"]))
	}
	res.Avg = collectAgg(row, "avg_", agg.Avg)
	res.Sum = collectAgg(row, "sum_", agg.Sum)
	res.Min = collectAgg(row, "min_", agg.Min)
	res.Max = collectAgg(row, "max_", agg.Max)
	return res
}

func collectAgg(row map[string]any, prefix string, fields []string) map[string]float64 {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]float64, len(fields))
	for _, field := range fields {
		out[field] = toFloat(row[prefix+field])
	}
	return out
}

// toFloat handles the driver's numeric representations: AVG/SUM on integer
// columns come back as arbitrary-precision strings.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case int:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(n), 64)
		return f
	default:
		return 0
	}
}
