// Package orm is a small chainable query layer over GORM used by the
// repositories. It adds read-through caching and Prometheus query timing.
package orm

import (
	"time"

	"github.com/zephyrlabs/zephyr/pkg/cache"
	"github.com/zephyrlabs/zephyr/pkg/metrics"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

// New wraps a *gorm.DB. Repositories receive the handle at construction so
// tests can point them at an in-memory database.
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

// Get loads all matching rows into dest.
func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

// First loads the first matching row. Returns gorm.ErrRecordNotFound when
// nothing matches.
func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

// Create inserts v.
func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

// UpdateColumn applies a single-column update to every matching row and
// returns the number of rows affected. With a conditional Where this is the
// atomic compare-and-swap primitive (e.g. stock decrement guarded by
// capacity > 0).
func (q *Query) UpdateColumn(column string, value interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())
	res := q.db.UpdateColumn(column, value)
	return res.RowsAffected, res.Error
}

// Cache loads dest from the cache under key, falling back to the query and
// populating the cache on a miss.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.Get(dest); err != nil {
		return err
	}

	cache.Set(key, dest, ttl) //nolint:errcheck
	return nil
}

// Expr exposes gorm.Expr for conditional column arithmetic.
func Expr(expr string, args ...interface{}) interface{} {
	return gorm.Expr(expr, args...)
}
