package geom

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var (
	// UnitSquare is the rectangle [0, 1] x [0, 1].
	UnitSquare = Rect{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}

	// Plane is the rectangle covering every finite point.
	Plane = Rect{
		Min: orb.Point{math.Inf(-1), math.Inf(-1)},
		Max: orb.Point{math.Inf(1), math.Inf(1)},
	}
)

// Rect is an axis-aligned rectangle backed by an orb.Bound.
// All four edges belong to the rectangle.
type Rect orb.Bound

// NewRect returns the rectangle [xmin, xmax] x [ymin, ymax].
// It returns an error if the bounds are inverted or NaN.
func NewRect(xmin, ymin, xmax, ymax float64) (Rect, error) {
	r := Rect{Min: orb.Point{xmin, ymin}, Max: orb.Point{xmax, ymax}}
	if !r.Valid() {
		return Rect{}, fmt.Errorf("geom: invalid rectangle %s", r)
	}
	return r, nil
}

// MustRect is like NewRect but panics on invalid bounds.
func MustRect(xmin, ymin, xmax, ymax float64) Rect {
	r, err := NewRect(xmin, ymin, xmax, ymax)
	if err != nil {
		panic(err)
	}
	return r
}

// Bound returns r as an orb.Bound.
func (r Rect) Bound() orb.Bound { return orb.Bound(r) }

// XMin returns the left edge.
func (r Rect) XMin() float64 { return r.Min[0] }

// YMin returns the bottom edge.
func (r Rect) YMin() float64 { return r.Min[1] }

// XMax returns the right edge.
func (r Rect) XMax() float64 { return r.Max[0] }

// YMax returns the top edge.
func (r Rect) YMax() float64 { return r.Max[1] }

// Valid reports whether XMin <= XMax and YMin <= YMax.
// Comparisons against NaN are false, so NaN bounds are invalid.
func (r Rect) Valid() bool {
	return r.Min[0] <= r.Max[0] && r.Min[1] <= r.Max[1]
}

// Width returns XMax - XMin.
func (r Rect) Width() float64 { return r.Max[0] - r.Min[0] }

// Height returns YMax - YMin.
func (r Rect) Height() float64 { return r.Max[1] - r.Min[1] }

// Contains reports whether p lies in r, edges included.
func (r Rect) Contains(p Point) bool {
	return orb.Bound(r).Contains(orb.Point(p))
}

// Intersects reports whether r and other share at least one point.
// Rectangles that only touch along an edge or a corner intersect.
func (r Rect) Intersects(other Rect) bool {
	return orb.Bound(r).Intersects(orb.Bound(other))
}

// Clamp returns the point of r closest to p.
func (r Rect) Clamp(p Point) Point {
	return Pt(
		min(max(p[0], r.Min[0]), r.Max[0]),
		min(max(p[1], r.Min[1]), r.Max[1]),
	)
}

// DistanceSquaredTo returns the squared Euclidean distance from p to the
// closest point of r. It is zero when p lies in r.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	return planar.DistanceSquared(orb.Point(p), orb.Point(r.Clamp(p)))
}

// DistanceTo returns the Euclidean distance from p to r.
func (r Rect) DistanceTo(p Point) float64 {
	return math.Sqrt(r.DistanceSquaredTo(p))
}

// SplitX cuts r along the vertical line through x and returns the left
// and right parts. Both parts keep the line as an edge.
func (r Rect) SplitX(x float64) (left, right Rect) {
	left, right = r, r
	left.Max[0] = x
	right.Min[0] = x
	return left, right
}

// SplitY cuts r along the horizontal line through y and returns the lower
// and upper parts. Both parts keep the line as an edge.
func (r Rect) SplitY(y float64) (below, above Rect) {
	below, above = r, r
	below.Max[1] = y
	above.Min[1] = y
	return below, above
}

func (r Rect) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return "[" + f(r.Min[0]) + ", " + f(r.Max[0]) + "] x [" + f(r.Min[1]) + ", " + f(r.Max[1]) + "]"
}
