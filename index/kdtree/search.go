package kdtree

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kdgo/geom"
	"github.com/hupe1980/kdgo/index"
)

// Range returns all points inside r, edges included.
// The result is ordered by a pre-order walk of the tree.
func (t *Tree) Range(r *geom.Rect) ([]geom.Point, error) {
	if err := index.CheckRect(r); err != nil {
		return nil, fmt.Errorf("kdtree: range: %w", err)
	}

	var points []geom.Point
	t.rangeSearch(t.root, *r, func(n *node) bool {
		points = append(points, n.point)
		return true
	})
	return points, nil
}

// RangeSeq streams the points inside r.
func (t *Tree) RangeSeq(r geom.Rect) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		t.rangeSearch(t.root, r, func(n *node) bool { return yield(n.point) })
	}
}

// RangeIDs returns the insertion ids of all points inside r.
func (t *Tree) RangeIDs(r *geom.Rect) (*roaring.Bitmap, error) {
	if err := index.CheckRect(r); err != nil {
		return nil, fmt.Errorf("kdtree: range: %w", err)
	}

	ids := roaring.New()
	t.rangeSearch(t.root, *r, func(n *node) bool {
		ids.Add(n.id)
		return true
	})
	return ids, nil
}

// rangeSearch calls emit for every node of the subtree rooted at n whose
// point lies in r. Subtrees whose region does not intersect r are skipped.
// It returns false once emit has returned false.
func (t *Tree) rangeSearch(n *node, r geom.Rect, emit func(n *node) bool) bool {
	if n == nil || !n.rect.Intersects(r) {
		return true
	}
	if r.Contains(n.point) && !emit(n) {
		return false
	}
	return t.rangeSearch(n.below, r, emit) && t.rangeSearch(n.above, r, emit)
}

// Nearest returns a point of the tree closest to p.
// When several points are equally close, the first one reached by the
// search wins, which depends on the shape of the tree.
func (t *Tree) Nearest(p *geom.Point) (geom.Point, bool, error) {
	if err := index.CheckPoint(p); err != nil {
		return geom.Point{}, false, fmt.Errorf("kdtree: nearest: %w", err)
	}
	if t.root == nil {
		return geom.Point{}, false, nil
	}

	best := t.nearest(t.root, *p, t.root)
	return best.point, true, nil
}

func (t *Tree) nearest(n *node, q geom.Point, best *node) *node {
	if n == nil {
		return best
	}

	bestDist := best.point.DistanceSquaredTo(q)
	if n.rect.DistanceSquaredTo(q) > bestDist {
		return best
	}
	if n.point.DistanceSquaredTo(q) < bestDist {
		best = n
	}

	first, second := n.above, n.below
	if n.orient == Vertical && q.X() < n.point.X() || n.orient == Horizontal && q.Y() < n.point.Y() {
		first, second = n.below, n.above
	}

	best = t.nearest(first, q, best)
	return t.nearest(second, q, best)
}
