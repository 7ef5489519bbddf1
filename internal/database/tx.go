package database

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// TxOptions bounds one transaction. The zero value uses the database's
// default isolation level and no deadline.
type TxOptions struct {
	Isolation sql.IsolationLevel
	Timeout   time.Duration
}

// WithinTransaction runs fn atomically. fn receives the transaction handle;
// an error rolls everything back. Timeout, when set, bounds the whole
// transaction through the context deadline.
func WithinTransaction(ctx context.Context, db *gorm.DB, opts TxOptions, fn func(tx *gorm.DB) error) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	return db.WithContext(ctx).Transaction(fn, &sql.TxOptions{Isolation: opts.Isolation})
}
