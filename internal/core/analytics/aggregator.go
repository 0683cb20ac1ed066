package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMissingOwnerScope is returned for any query that is not tenant scoped
var ErrMissingOwnerScope = errors.New("aggregate query requires an owner scope")

// Aggregator provides owner-scoped database aggregation helpers
type Aggregator struct {
	db *gorm.DB
}

// NewAggregator creates a new aggregator
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Aggregate runs the query and scans the rows into dest (a struct or a slice of structs)
func (a *Aggregator) Aggregate(ctx context.Context, query AggregateQuery, dest interface{}) error {
	db, err := a.build(ctx, query)
	if err != nil {
		return err
	}

	if err := db.Scan(dest).Error; err != nil {
		return fmt.Errorf("aggregate query on %s failed: %w", query.Table, err)
	}
	return nil
}

func (a *Aggregator) build(ctx context.Context, query AggregateQuery) (*gorm.DB, error) {
	if query.OwnerColumn == "" || query.OwnerID == uuid.Nil {
		return nil, ErrMissingOwnerScope
	}
	if len(query.Select) == 0 {
		return nil, fmt.Errorf("aggregate query on %s has no select list", query.Table)
	}

	db := a.db.WithContext(ctx).Table(query.Table)

	for _, join := range query.Joins {
		db = db.Joins(join)
	}

	db = db.Select(strings.Join(query.Select, ", "))

	// Tenant scope first, always
	db = db.Where(fmt.Sprintf("%s = ?", query.OwnerColumn), query.OwnerID)

	for _, cond := range query.Where {
		db = db.Where(cond.Expr, cond.Args...)
	}

	if query.DateRange != nil {
		db = db.Where(fmt.Sprintf("%s >= ? AND %s < ?", query.DateRange.Field, query.DateRange.Field),
			query.DateRange.Start, query.DateRange.End)
	}

	if len(query.GroupBy) > 0 {
		db = db.Group(strings.Join(query.GroupBy, ", "))
	}

	for _, order := range query.OrderBy {
		db = db.Order(order)
	}

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	return db, nil
}
