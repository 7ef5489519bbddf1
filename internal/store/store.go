// Package store is the data-access layer: one typed store per entity over a
// shared generic CRUD core, with composable filtering, ordering, pagination,
// aggregates and group-by. Stores hold no state beyond the injected gorm
// handle; rebinding them to a transaction is a cheap re-wrap (see Stores).
package store

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// core is the uniform operation set shared by every entity store.
type core[T any] struct {
	db        *gorm.DB
	fields    query.Fields
	pk        string
	relations map[string]string
}

func newCore[T any](db *gorm.DB, fields query.Fields, pk string, relations map[string]string) core[T] {
	return core[T]{db: db, fields: fields, pk: pk, relations: relations}
}

func (c *core[T]) model(ctx context.Context) *gorm.DB {
	var zero T
	return c.db.WithContext(ctx).Model(&zero)
}

// getBy fetches one row by an arbitrary unique condition. A miss is not an
// error: callers get (nil, nil) and decide; the OrFail variants translate a
// miss to ErrNotFound.
func (c *core[T]) getBy(ctx context.Context, cond string, args ...any) (*T, error) {
	var out T
	err := c.db.WithContext(ctx).Where(cond, args...).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

func (c *core[T]) getByOrFail(ctx context.Context, cond string, args ...any) (*T, error) {
	out, err := c.getBy(ctx, cond, args...)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

// List runs a filtered, ordered, paginated query with optional eager-loading.
func (c *core[T]) List(ctx context.Context, q query.Query) ([]T, error) {
	where, args, err := query.Build(q.Filter, c.fields)
	if err != nil {
		return nil, invalidQuery(err)
	}
	orderBy, err := query.BuildOrder(q.Orders, c.fields)
	if err != nil {
		return nil, invalidQuery(err)
	}
	if q.Cursor != "" {
		// A keyset cursor pages in key order; any other ordering would hand
		// back incoherent pages.
		if err := c.checkCursorOrders(q.Orders); err != nil {
			return nil, err
		}
	}

	tx := c.db.WithContext(ctx)
	if where != "" {
		tx = tx.Where(where, args...)
	}
	if q.Cursor != "" {
		// Rows strictly after the cursor in key order.
		tx = tx.Where(c.pk+" > ?", q.Cursor)
		if orderBy == "" {
			orderBy = c.pk + " ASC"
		}
	}
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}

	page := q.Page.Normalize()
	tx = tx.Offset(page.Skip).Limit(page.Take)

	for _, include := range q.Include {
		path, ok := c.relations[include]
		if !ok {
			return nil, invalidQuery(errors.New("unknown relation " + include))
		}
		tx = tx.Preload(path)
	}

	var out []T
	if err := tx.Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (c *core[T]) Count(ctx context.Context, f query.Filter) (int64, error) {
	where, args, err := query.Build(f, c.fields)
	if err != nil {
		return 0, invalidQuery(err)
	}
	tx := c.model(ctx)
	if where != "" {
		tx = tx.Where(where, args...)
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

func (c *core[T]) Create(ctx context.Context, row *T) error {
	return mapError(c.db.WithContext(ctx).Create(row).Error)
}

// CreateMany inserts a batch. With skipDuplicates, rows that would violate a
// unique constraint are silently dropped (ON CONFLICT DO NOTHING) and the
// returned count is the number actually inserted; without it the whole batch
// is one INSERT and fails atomically on the first conflict.
func (c *core[T]) CreateMany(ctx context.Context, rows []T, skipDuplicates bool) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx := c.db.WithContext(ctx)
	if skipDuplicates {
		tx = tx.Clauses(clause.OnConflict{DoNothing: true})
	}
	result := tx.Create(&rows)
	if result.Error != nil {
		return 0, mapError(result.Error)
	}
	return result.RowsAffected, nil
}

// updateBy applies a partial mutation to the single row matching cond.
// Change keys are validated against the entity's fields up front.
func (c *core[T]) updateBy(ctx context.Context, changes map[string]any, cond string, args ...any) error {
	if err := c.checkChanges(changes); err != nil {
		return err
	}
	result := c.model(ctx).Where(cond, args...).Updates(changes)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateMany applies changes to every row matching f; a nil filter means all
// rows, same as List.
func (c *core[T]) UpdateMany(ctx context.Context, f query.Filter, changes map[string]any) (int64, error) {
	if err := c.checkChanges(changes); err != nil {
		return 0, err
	}
	where, args, err := query.Build(f, c.fields)
	if err != nil {
		return 0, invalidQuery(err)
	}
	result := c.model(ctx).Where(whereOrAll(where), args...).Updates(changes)
	if result.Error != nil {
		return 0, mapError(result.Error)
	}
	return result.RowsAffected, nil
}

func (c *core[T]) deleteBy(ctx context.Context, cond string, args ...any) error {
	var zero T
	result := c.db.WithContext(ctx).Where(cond, args...).Delete(&zero)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes every row matching f; a nil filter means all rows.
func (c *core[T]) DeleteMany(ctx context.Context, f query.Filter) (int64, error) {
	where, args, err := query.Build(f, c.fields)
	if err != nil {
		return 0, invalidQuery(err)
	}
	var zero T
	result := c.db.WithContext(ctx).Where(whereOrAll(where), args...).Delete(&zero)
	if result.Error != nil {
		return 0, mapError(result.Error)
	}
	return result.RowsAffected, nil
}

// checkCursorOrders admits only the orderings a keyset cursor can page
// coherently: none (key ascending is implied) or the key itself ascending.
func (c *core[T]) checkCursorOrders(orders []query.Order) error {
	if len(orders) == 0 {
		return nil
	}
	if len(orders) == 1 && orders[0].Field == c.pk && !orders[0].Desc {
		return nil
	}
	return invalidQuery(errors.New("cursor pagination orders by " + c.pk + " only"))
}

// whereOrAll substitutes a match-all condition for an empty fragment so the
// many-row operations clear gorm's missing-WHERE guard.
func whereOrAll(where string) string {
	if where == "" {
		return "1 = 1"
	}
	return where
}

func (c *core[T]) checkChanges(changes map[string]any) error {
	if len(changes) == 0 {
		return invalidQuery(errors.New("no fields to update"))
	}
	for field := range changes {
		if !c.fields.Has(field) {
			return invalidQuery(errors.New("unknown field " + field))
		}
	}
	return nil
}
