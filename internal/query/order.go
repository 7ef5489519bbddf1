package query

import "strings"

// Order is one sort key. Fields are validated the same way filters are.
type Order struct {
	Field string
	Desc  bool
}

// BuildOrder renders an ORDER BY fragment ("created_at DESC, title ASC").
func BuildOrder(orders []Order, fields Fields) (string, error) {
	if len(orders) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		if err := fields.check(o.Field); err != nil {
			return "", err
		}
		dir := " ASC"
		if o.Desc {
			dir = " DESC"
		}
		parts = append(parts, o.Field+dir)
	}
	return strings.Join(parts, ", "), nil
}
