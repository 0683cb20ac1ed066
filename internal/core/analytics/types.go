package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Period names a reporting window
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// AggregateQuery represents an owner-scoped database aggregation query
type AggregateQuery struct {
	Table       string      // FROM table
	Joins       []string    // raw JOIN clauses
	OwnerColumn string      // column carrying the tenant (e.g. "sales.owner_id")
	OwnerID     uuid.UUID   // tenant to scope to, required
	Select      []string    // select expressions, aggregates aliased
	Where       []Condition // extra conditions
	DateRange   *DateRange  // half-open [Start, End) on Field
	GroupBy     []string    // GROUP BY columns
	OrderBy     []string    // ORDER BY clauses
	Limit       int         // LIMIT (0 = no limit)
}

// Condition is a parameterized WHERE fragment
type Condition struct {
	Expr string
	Args []interface{}
}

// DateRange represents a time period for filtering
type DateRange struct {
	Start time.Time
	End   time.Time
	Field string // Date field to filter on (e.g., "sales.created_at")
}

// Sample is a single timestamped amount fed into a daily series
type Sample struct {
	At     time.Time
	Amount float64
}

// DailyPoint is one day of a sales chart
type DailyPoint struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}
