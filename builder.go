// Package kdgo provides an embedded point index for the plane.
//
// This file implements index-specific fluent builder APIs for creating and configuring DB instances.
// Builders are immutable - each method returns a new builder with the updated configuration.
package kdgo

import (
	"github.com/hupe1980/kdgo/geom"
	"github.com/hupe1980/kdgo/index/flat"
	"github.com/hupe1980/kdgo/index/kdtree"
)

// =============================================================================
// KDTree Builder (Immutable)
// =============================================================================

// KDTree creates a new 2d-tree index builder covering the unit square.
//
// Example:
//
//	db, err := kdgo.KDTree().
//	    Bounds(geom.MustRect(0, 0, 100, 100)).
//	    Logger(kdgo.NewTextLogger(slog.LevelDebug)).
//	    Build()
func KDTree() KDTreeBuilder {
	return KDTreeBuilder{
		bounds: kdtree.DefaultOptions.Bounds,
	}
}

// KDTreeBuilder is an immutable fluent builder for creating 2d-tree based DB instances.
// Each method returns a new builder with the updated configuration.
type KDTreeBuilder struct {
	bounds      geom.Rect
	logger      *Logger
	metrics     MetricsCollector
	concurrency int
}

// Bounds sets the region covered by the root of the tree.
// Default: the unit square.
func (b KDTreeBuilder) Bounds(r geom.Rect) KDTreeBuilder {
	b.bounds = r
	return b
}

// Logger sets the structured logger for operation tracing.
func (b KDTreeBuilder) Logger(l *Logger) KDTreeBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b KDTreeBuilder) Metrics(mc MetricsCollector) KDTreeBuilder {
	b.metrics = mc
	return b
}

// Concurrency sets how many queries NearestBatch runs in parallel.
// Default: runtime.GOMAXPROCS(0).
func (b KDTreeBuilder) Concurrency(n int) KDTreeBuilder {
	b.concurrency = n
	return b
}

// Build creates the 2d-tree based DB instance.
func (b KDTreeBuilder) Build() (*DB, error) {
	tr, err := kdtree.New(func(o *kdtree.Options) {
		o.Bounds = b.bounds
	})
	if err != nil {
		return nil, translateError(err)
	}

	return New(tr, commonOptions(b.logger, b.metrics, b.concurrency)...)
}

// =============================================================================
// Flat Builder (Immutable)
// =============================================================================

// Flat creates a new brute-force index builder.
// Flat answers every query exactly by scanning all points.
//
// Example:
//
//	db, err := kdgo.Flat().Build()
func Flat() FlatBuilder {
	return FlatBuilder{}
}

// FlatBuilder is an immutable fluent builder for creating Flat-based DB instances.
type FlatBuilder struct {
	logger      *Logger
	metrics     MetricsCollector
	concurrency int
}

// Logger sets the structured logger for operation tracing.
func (b FlatBuilder) Logger(l *Logger) FlatBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b FlatBuilder) Metrics(mc MetricsCollector) FlatBuilder {
	b.metrics = mc
	return b
}

// Concurrency sets how many queries NearestBatch runs in parallel.
func (b FlatBuilder) Concurrency(n int) FlatBuilder {
	b.concurrency = n
	return b
}

// Build creates the Flat-based DB instance.
func (b FlatBuilder) Build() (*DB, error) {
	return New(flat.New(), commonOptions(b.logger, b.metrics, b.concurrency)...)
}

func commonOptions(logger *Logger, metrics MetricsCollector, concurrency int) []Option {
	var opts []Option
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	if metrics != nil {
		opts = append(opts, WithMetricsCollector(metrics))
	}
	if concurrency > 0 {
		opts = append(opts, WithConcurrency(concurrency))
	}
	return opts
}
