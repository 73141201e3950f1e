// Package flat provides a brute-force point set.
//
// Points are kept in a slice sorted by (x, y). Membership uses binary search;
// range and nearest-neighbour queries scan every point. Flat is the reference
// the 2d-tree is tested against and a reasonable choice for small sets.
package flat

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/kdgo/geom"
	"github.com/hupe1980/kdgo/index"
)

// Compile-time check to ensure Flat satisfies the index interface.
var _ index.PointIndex = (*Flat)(nil)

// Flat is a set of distinct points answering queries by linear scan.
// It is not safe for concurrent use.
type Flat struct {
	points []geom.Point // sorted by geom.Compare
}

// New creates an empty flat point set.
func New() *Flat {
	return &Flat{points: make([]geom.Point, 0)}
}

// Name returns the backend name.
func (*Flat) Name() string { return "Flat" }

// Len returns the number of points in the set.
func (f *Flat) Len() int { return len(f.points) }

// IsEmpty reports whether the set holds no points.
func (f *Flat) IsEmpty() bool { return len(f.points) == 0 }

// Insert adds p to the set. Inserting a point already present is a no-op.
func (f *Flat) Insert(p *geom.Point) error {
	if err := index.CheckPoint(p); err != nil {
		return fmt.Errorf("flat: insert: %w", err)
	}

	i, found := slices.BinarySearchFunc(f.points, *p, geom.Compare)
	if found {
		return nil
	}
	f.points = slices.Insert(f.points, i, *p)
	return nil
}

// Contains reports whether p is in the set.
func (f *Flat) Contains(p *geom.Point) (bool, error) {
	if err := index.CheckPoint(p); err != nil {
		return false, fmt.Errorf("flat: contains: %w", err)
	}

	_, found := slices.BinarySearchFunc(f.points, *p, geom.Compare)
	return found, nil
}

// Range returns all points inside r in (x, y) order.
func (f *Flat) Range(r *geom.Rect) ([]geom.Point, error) {
	if err := index.CheckRect(r); err != nil {
		return nil, fmt.Errorf("flat: range: %w", err)
	}
	return slices.Collect(f.RangeSeq(*r)), nil
}

// RangeSeq streams the points inside r in (x, y) order.
func (f *Flat) RangeSeq(r geom.Rect) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for _, p := range f.points {
			if r.Contains(p) && !yield(p) {
				return
			}
		}
	}
}

// Nearest returns a point of the set closest to p. Among equally close
// points the smallest in (x, y) order wins.
func (f *Flat) Nearest(p *geom.Point) (geom.Point, bool, error) {
	if err := index.CheckPoint(p); err != nil {
		return geom.Point{}, false, fmt.Errorf("flat: nearest: %w", err)
	}
	if len(f.points) == 0 {
		return geom.Point{}, false, nil
	}

	nearest := f.points[0]
	bestDist := p.DistanceSquaredTo(nearest)
	for _, c := range f.points[1:] {
		if d := p.DistanceSquaredTo(c); d < bestDist {
			nearest, bestDist = c, d
		}
	}
	return nearest, true, nil
}

// All yields every point in (x, y) order.
func (f *Flat) All() iter.Seq[geom.Point] {
	return slices.Values(f.points)
}
