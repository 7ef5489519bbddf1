package query

const (
	defaultTake = 20
	maxTake     = 100
)

// Page is offset pagination (skip/take). Take is clamped to [1, 100] with a
// default of 20; a negative Skip reads from the start.
type Page struct {
	Skip int
	Take int
}

func (p Page) Normalize() Page {
	if p.Take < 1 || p.Take > maxTake {
		p.Take = defaultTake
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
	return p
}

// Query bundles everything a List call accepts: a filter expression, sort
// keys, a page window, an optional primary-key cursor (rows strictly after
// it, in key order) and relation names to eager-load.
type Query struct {
	Filter  Filter
	Orders  []Order
	Page    Page
	Cursor  string
	Include []string
}
