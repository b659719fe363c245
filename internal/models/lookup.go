package models

import "time"

// Lookup records one completed range lookup for the history view (DB model).
type Lookup struct {
	CreatedAt      time.Time
	HeaviestDate   time.Time
	RangeStart     *Date
	RangeEnd       *Date
	HeaviestID     string
	ID             int64
	LaunchCount    int
	DurationMs     int64
	HeaviestMassKg float64
}

// Range returns the date range that was queried.
func (l Lookup) Range() DateRange {
	return DateRange{Start: l.RangeStart, End: l.RangeEnd}
}

// LookupStats summarises the recorded lookup history (DB model).
type LookupStats struct {
	FirstLookup   time.Time
	LastLookup    time.Time
	TotalLookups  int
	TotalLaunches int
	AvgDurationMs float64
	MaxHeaviestKg float64
	MaxHeaviestID string
	EmptyLookups  int
}
