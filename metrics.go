package kdgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordBatchInsert is called after each batch insert operation.
	// count is the number of points submitted, added the number of points
	// that were not already present.
	RecordBatchInsert(count, added int, duration time.Duration)

	// RecordContains is called after each membership test.
	RecordContains(duration time.Duration, err error)

	// RecordRange is called after each range query with the number of points found.
	RecordRange(results int, duration time.Duration, err error)

	// RecordNearest is called after each nearest-neighbour query.
	RecordNearest(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)         {}
func (NoopMetricsCollector) RecordBatchInsert(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordContains(time.Duration, error)       {}
func (NoopMetricsCollector) RecordRange(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordNearest(time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount           atomic.Int64
	InsertErrors          atomic.Int64
	InsertTotalNanos      atomic.Int64
	BatchInsertCount      atomic.Int64
	BatchInsertItems      atomic.Int64
	BatchInsertAdded      atomic.Int64
	BatchInsertTotalNanos atomic.Int64
	ContainsCount         atomic.Int64
	ContainsErrors        atomic.Int64
	ContainsTotalNanos    atomic.Int64
	RangeCount            atomic.Int64
	RangeErrors           atomic.Int64
	RangeResults          atomic.Int64
	RangeTotalNanos       atomic.Int64
	NearestCount          atomic.Int64
	NearestErrors         atomic.Int64
	NearestTotalNanos     atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordBatchInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchInsert(count, added int, duration time.Duration) {
	b.BatchInsertCount.Add(1)
	b.BatchInsertItems.Add(int64(count))
	b.BatchInsertAdded.Add(int64(added))
	b.BatchInsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordContains implements MetricsCollector.
func (b *BasicMetricsCollector) RecordContains(duration time.Duration, err error) {
	b.ContainsCount.Add(1)
	b.ContainsTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ContainsErrors.Add(1)
	}
}

// RecordRange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRange(results int, duration time.Duration, err error) {
	b.RangeCount.Add(1)
	b.RangeResults.Add(int64(results))
	b.RangeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RangeErrors.Add(1)
	}
}

// RecordNearest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearest(duration time.Duration, err error) {
	b.NearestCount.Add(1)
	b.NearestTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.NearestErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:         b.InsertCount.Load(),
		InsertErrors:        b.InsertErrors.Load(),
		InsertAvgNanos:      avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		BatchInsertCount:    b.BatchInsertCount.Load(),
		BatchInsertItems:    b.BatchInsertItems.Load(),
		BatchInsertAdded:    b.BatchInsertAdded.Load(),
		BatchInsertAvgNanos: avg(b.BatchInsertTotalNanos.Load(), b.BatchInsertCount.Load()),
		ContainsCount:       b.ContainsCount.Load(),
		ContainsErrors:      b.ContainsErrors.Load(),
		ContainsAvgNanos:    avg(b.ContainsTotalNanos.Load(), b.ContainsCount.Load()),
		RangeCount:          b.RangeCount.Load(),
		RangeErrors:         b.RangeErrors.Load(),
		RangeResults:        b.RangeResults.Load(),
		RangeAvgNanos:       avg(b.RangeTotalNanos.Load(), b.RangeCount.Load()),
		NearestCount:        b.NearestCount.Load(),
		NearestErrors:       b.NearestErrors.Load(),
		NearestAvgNanos:     avg(b.NearestTotalNanos.Load(), b.NearestCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount         int64
	InsertErrors        int64
	InsertAvgNanos      int64
	BatchInsertCount    int64
	BatchInsertItems    int64
	BatchInsertAdded    int64
	BatchInsertAvgNanos int64
	ContainsCount       int64
	ContainsErrors      int64
	ContainsAvgNanos    int64
	RangeCount          int64
	RangeErrors         int64
	RangeResults        int64
	RangeAvgNanos       int64
	NearestCount        int64
	NearestErrors       int64
	NearestAvgNanos     int64
}
