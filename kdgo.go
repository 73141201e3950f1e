package kdgo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kdgo/geom"
	"github.com/hupe1980/kdgo/index"
	"golang.org/x/sync/errgroup"
)

// idRanger is implemented by backends that identify points by insertion id.
type idRanger interface {
	RangeIDs(r *geom.Rect) (*roaring.Bitmap, error)
	Point(id uint32) (geom.Point, bool)
}

// bounded is implemented by backends with a configured bounding rectangle.
type bounded interface {
	Bounds() geom.Rect
}

// DB is a point index guarded for concurrent use.
//
// Writes are serialized; any number of queries may run concurrently with
// each other but not with a write.
type DB struct {
	mu          sync.RWMutex
	idx         index.PointIndex
	closed      bool
	metrics     MetricsCollector
	logger      *Logger
	concurrency int
}

// New wraps idx in a DB. idx must not be used directly afterwards.
//
// Most callers should use the KDTree or Flat builders instead.
func New(idx index.PointIndex, optFns ...Option) (*DB, error) {
	if idx == nil {
		return nil, fmt.Errorf("kdgo: %w: index is nil", ErrInvalidArgument)
	}

	opts := applyOptions(optFns)

	return &DB{
		idx:         idx,
		metrics:     opts.metricsCollector,
		logger:      opts.logger.WithIndex(idx.Stats().Name),
		concurrency: opts.concurrency,
	}, nil
}

// Insert adds p to the index. Inserting a point already present is a no-op.
//
// Points outside the index bounds are stored and queried like any other;
// such inserts are logged at warn level.
func (db *DB) Insert(ctx context.Context, p *geom.Point) error {
	start := time.Now()

	db.mu.Lock()
	added, err := db.insertLocked(ctx, p)
	db.mu.Unlock()

	err = translateError(err)
	db.metrics.RecordInsert(time.Since(start), err)
	db.logger.LogInsert(ctx, p, added, err)
	return err
}

func (db *DB) insertLocked(ctx context.Context, p *geom.Point) (bool, error) {
	if db.closed {
		return false, ErrClosed
	}

	before := db.idx.Len()
	if err := db.idx.Insert(p); err != nil {
		return false, err
	}
	added := db.idx.Len() > before

	if b, ok := db.idx.(bounded); ok && added && !b.Bounds().Contains(*p) {
		db.logger.LogOutOfBounds(ctx, *p, b.Bounds())
	}
	return added, nil
}

// BatchInsert inserts points under a single write lock and returns how many
// of them were not already present. It stops at the first invalid point or
// when ctx is canceled; points inserted before that remain in the index.
func (db *DB) BatchInsert(ctx context.Context, points []geom.Point) (int, error) {
	start := time.Now()

	db.mu.Lock()
	added, err := db.batchInsertLocked(ctx, points)
	db.mu.Unlock()

	err = translateError(err)
	db.metrics.RecordBatchInsert(len(points), added, time.Since(start))
	db.logger.LogBatchInsert(ctx, len(points), added, err)
	return added, err
}

func (db *DB) batchInsertLocked(ctx context.Context, points []geom.Point) (int, error) {
	added := 0
	for i := range points {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		ok, err := db.insertLocked(ctx, &points[i])
		if err != nil {
			return added, fmt.Errorf("point %d: %w", i, err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// Contains reports whether p is in the index.
func (db *DB) Contains(ctx context.Context, p *geom.Point) (bool, error) {
	start := time.Now()

	db.mu.RLock()
	ok, err := db.containsLocked(p)
	db.mu.RUnlock()

	err = translateError(err)
	db.metrics.RecordContains(time.Since(start), err)
	return ok, err
}

func (db *DB) containsLocked(p *geom.Point) (bool, error) {
	if db.closed {
		return false, ErrClosed
	}
	return db.idx.Contains(p)
}

// Range returns all points inside r, edges included, in unspecified order.
func (db *DB) Range(ctx context.Context, r *geom.Rect) ([]geom.Point, error) {
	start := time.Now()

	db.mu.RLock()
	points, err := db.rangeLocked(r)
	db.mu.RUnlock()

	err = translateError(err)
	db.metrics.RecordRange(len(points), time.Since(start), err)
	db.logger.LogRange(ctx, r, len(points), err)
	return points, err
}

func (db *DB) rangeLocked(r *geom.Rect) ([]geom.Point, error) {
	if db.closed {
		return nil, ErrClosed
	}
	return db.idx.Range(r)
}

// RangeIDs returns the insertion ids of all points inside r.
// It returns ErrUnsupported if the backend does not assign ids.
func (db *DB) RangeIDs(ctx context.Context, r *geom.Rect) (*roaring.Bitmap, error) {
	start := time.Now()

	db.mu.RLock()
	ids, err := db.rangeIDsLocked(r)
	db.mu.RUnlock()

	var n int
	if ids != nil {
		n = int(ids.GetCardinality())
	}
	err = translateError(err)
	db.metrics.RecordRange(n, time.Since(start), err)
	db.logger.LogRange(ctx, r, n, err)
	return ids, err
}

func (db *DB) rangeIDsLocked(r *geom.Rect) (*roaring.Bitmap, error) {
	if db.closed {
		return nil, ErrClosed
	}
	ir, ok := db.idx.(idRanger)
	if !ok {
		return nil, fmt.Errorf("kdgo: range ids: %w", ErrUnsupported)
	}
	return ir.RangeIDs(r)
}

// Point returns the point with the given insertion id.
func (db *DB) Point(id uint32) (geom.Point, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.closed {
		return geom.Point{}, ErrClosed
	}
	ir, ok := db.idx.(idRanger)
	if !ok {
		return geom.Point{}, fmt.Errorf("kdgo: point: %w", ErrUnsupported)
	}
	p, ok := ir.Point(id)
	if !ok {
		return geom.Point{}, fmt.Errorf("kdgo: point %d: %w", id, ErrNotFound)
	}
	return p, nil
}

// Nearest returns a point of the index closest to p.
// found is false if the index is empty.
func (db *DB) Nearest(ctx context.Context, p *geom.Point) (nearest geom.Point, found bool, err error) {
	start := time.Now()

	db.mu.RLock()
	nearest, found, err = db.nearestLocked(p)
	db.mu.RUnlock()

	err = translateError(err)
	db.metrics.RecordNearest(time.Since(start), err)
	db.logger.LogNearest(ctx, p, found, err)
	return nearest, found, err
}

func (db *DB) nearestLocked(p *geom.Point) (geom.Point, bool, error) {
	if db.closed {
		return geom.Point{}, false, ErrClosed
	}
	return db.idx.Nearest(p)
}

// NearestResult is the answer to one query of NearestBatch.
type NearestResult struct {
	// Query is the query point.
	Query geom.Point

	// Point is the nearest stored point. It is only valid if Found is true.
	Point geom.Point

	// Found is false if the index was empty.
	Found bool

	// DistanceSquared is the squared distance between Query and Point.
	DistanceSquared float64
}

// NearestBatch answers a nearest-neighbour query for every point of queries.
// Queries run in parallel under a single read lock; results are returned in
// query order.
func (db *DB) NearestBatch(ctx context.Context, queries []geom.Point) ([]NearestResult, error) {
	db.mu.RLock()
	results, err := db.nearestBatchLocked(ctx, queries)
	db.mu.RUnlock()

	err = translateError(err)
	db.logger.LogNearestBatch(ctx, len(queries), err)
	return results, err
}

func (db *DB) nearestBatchLocked(ctx context.Context, queries []geom.Point) ([]NearestResult, error) {
	if db.closed {
		return nil, ErrClosed
	}

	results := make([]NearestResult, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(db.concurrency)

	for i := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			qStart := time.Now()
			q := queries[i]
			p, found, err := db.idx.Nearest(&q)
			db.metrics.RecordNearest(time.Since(qStart), err)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}

			results[i] = NearestResult{Query: q, Point: p, Found: found}
			if found {
				results[i].DistanceSquared = q.DistanceSquaredTo(p)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Len returns the number of points in the index. It keeps working after Close.
func (db *DB) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.idx.Len()
}

// IsEmpty reports whether the index holds no points.
func (db *DB) IsEmpty() bool {
	return db.Len() == 0
}

// Stats returns structural statistics about the index.
func (db *DB) Stats() index.Stats {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.idx.Stats()
}
