package query

import (
	"strings"
)

// Filter is a composable boolean predicate over entity fields. Build renders
// it to a SQL fragment plus bind args for gorm's Where/Having.
type Filter interface {
	render(fields Fields, sb *strings.Builder, args *[]any) error
}

type op string

const (
	opEq        op = "="
	opNe        op = "<>"
	opGt        op = ">"
	opGte       op = ">="
	opLt        op = "<"
	opLte       op = "<="
	opContains  op = "contains"
	opHasPrefix op = "prefix"
	opHasSuffix op = "suffix"
)

type cond struct {
	field string
	op    op
	value any
}

type inCond struct {
	field  string
	values []any
}

type nullCond struct {
	field   string
	notNull bool
}

type andFilter []Filter
type orFilter []Filter

type notFilter struct {
	inner Filter
}

func Eq(field string, value any) Filter  { return cond{field, opEq, value} }
func Ne(field string, value any) Filter  { return cond{field, opNe, value} }
func Gt(field string, value any) Filter  { return cond{field, opGt, value} }
func Gte(field string, value any) Filter { return cond{field, opGte, value} }
func Lt(field string, value any) Filter  { return cond{field, opLt, value} }
func Lte(field string, value any) Filter { return cond{field, opLte, value} }

// Contains, HasPrefix and HasSuffix are substring matches. The needle is
// escaped so user-supplied % and _ match literally.
func Contains(field, s string) Filter  { return cond{field, opContains, s} }
func HasPrefix(field, s string) Filter { return cond{field, opHasPrefix, s} }
func HasSuffix(field, s string) Filter { return cond{field, opHasSuffix, s} }

func In(field string, values ...any) Filter { return inCond{field, values} }
func IsNull(field string) Filter            { return nullCond{field, false} }
func NotNull(field string) Filter           { return nullCond{field, true} }

func And(filters ...Filter) Filter { return andFilter(filters) }
func Or(filters ...Filter) Filter  { return orFilter(filters) }
func Not(filter Filter) Filter     { return notFilter{filter} }

// Build validates every referenced field against the entity's Fields and
// returns the WHERE fragment with its args. A nil filter builds to "".
func Build(f Filter, fields Fields) (string, []any, error) {
	if f == nil {
		return "", nil, nil
	}
	var sb strings.Builder
	var args []any
	if err := f.render(fields, &sb, &args); err != nil {
		return "", nil, err
	}
	return sb.String(), args, nil
}

func (c cond) render(fields Fields, sb *strings.Builder, args *[]any) error {
	if err := fields.check(c.field); err != nil {
		return err
	}
	switch c.op {
	case opContains:
		sb.WriteString(c.field + " LIKE ?")
		*args = append(*args, "%"+escapeLike(c.value.(string))+"%")
	case opHasPrefix:
		sb.WriteString(c.field + " LIKE ?")
		*args = append(*args, escapeLike(c.value.(string))+"%")
	case opHasSuffix:
		sb.WriteString(c.field + " LIKE ?")
		*args = append(*args, "%"+escapeLike(c.value.(string)))
	case opEq:
		if c.value == nil {
			sb.WriteString(c.field + " IS NULL")
			return nil
		}
		sb.WriteString(c.field + " = ?")
		*args = append(*args, c.value)
	case opNe:
		if c.value == nil {
			sb.WriteString(c.field + " IS NOT NULL")
			return nil
		}
		sb.WriteString(c.field + " <> ?")
		*args = append(*args, c.value)
	default:
		sb.WriteString(c.field + " " + string(c.op) + " ?")
		*args = append(*args, c.value)
	}
	return nil
}

func (c inCond) render(fields Fields, sb *strings.Builder, args *[]any) error {
	if err := fields.check(c.field); err != nil {
		return err
	}
	if len(c.values) == 0 {
		// Empty set membership matches nothing.
		sb.WriteString("1 = 0")
		return nil
	}
	sb.WriteString(c.field + " IN ?")
	*args = append(*args, c.values)
	return nil
}

func (c nullCond) render(fields Fields, sb *strings.Builder, _ *[]any) error {
	if err := fields.check(c.field); err != nil {
		return err
	}
	if c.notNull {
		sb.WriteString(c.field + " IS NOT NULL")
	} else {
		sb.WriteString(c.field + " IS NULL")
	}
	return nil
}

func (f andFilter) render(fields Fields, sb *strings.Builder, args *[]any) error {
	return renderJoined(f, " AND ", "1 = 1", fields, sb, args)
}

func (f orFilter) render(fields Fields, sb *strings.Builder, args *[]any) error {
	return renderJoined(f, " OR ", "1 = 0", fields, sb, args)
}

func (f notFilter) render(fields Fields, sb *strings.Builder, args *[]any) error {
	if f.inner == nil {
		sb.WriteString("1 = 0")
		return nil
	}
	sb.WriteString("NOT (")
	if err := f.inner.render(fields, sb, args); err != nil {
		return err
	}
	sb.WriteString(")")
	return nil
}

func renderJoined(filters []Filter, sep, empty string, fields Fields, sb *strings.Builder, args *[]any) error {
	if len(filters) == 0 {
		sb.WriteString(empty)
		return nil
	}
	sb.WriteString("(")
	for i, f := range filters {
		if i > 0 {
			sb.WriteString(sep)
		}
		if err := f.render(fields, sb, args); err != nil {
			return err
		}
	}
	sb.WriteString(")")
	return nil
}

// escapeLike neutralizes LIKE metacharacters; Postgres' default escape
// character is backslash.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
