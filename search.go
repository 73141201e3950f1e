// Package kdgo provides an embedded point index for the plane.
//
// This file implements streaming range queries.
package kdgo

import (
	"context"
	"iter"
	"time"

	"github.com/hupe1980/kdgo/geom"
)

// RangeStream returns an iterator over the points inside r.
// The read lock is held while iterating, so the loop body must not call
// other DB methods. Breaking out of the loop ends the query early.
//
// Example:
//
//	for p, err := range db.RangeStream(ctx, r) {
//	    if err != nil {
//	        return err
//	    }
//	    process(p)
//	}
func (db *DB) RangeStream(ctx context.Context, r geom.Rect) iter.Seq2[geom.Point, error] {
	return func(yield func(geom.Point, error) bool) {
		start := time.Now()
		count := 0

		db.mu.RLock()
		defer db.mu.RUnlock()

		finish := func(err error) {
			db.metrics.RecordRange(count, time.Since(start), err)
			db.logger.LogRange(ctx, &r, count, err)
		}

		if db.closed {
			finish(ErrClosed)
			yield(geom.Point{}, ErrClosed)
			return
		}

		for p := range db.idx.RangeSeq(r) {
			if err := ctx.Err(); err != nil {
				finish(err)
				yield(geom.Point{}, err)
				return
			}
			count++
			if !yield(p, nil) {
				break
			}
		}
		finish(nil)
	}
}

// First returns any point inside r, or ErrNotFound if r holds no point.
func (db *DB) First(ctx context.Context, r geom.Rect) (geom.Point, error) {
	for p, err := range db.RangeStream(ctx, r) {
		return p, err
	}
	return geom.Point{}, ErrNotFound
}

// Count returns the number of points inside r.
func (db *DB) Count(ctx context.Context, r geom.Rect) (int, error) {
	n := 0
	for _, err := range db.RangeStream(ctx, r) {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}
