package geom

import (
	"cmp"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a point in the plane, stored as an orb.Point ([x, y]).
type Point orb.Point

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{x, y}
}

// X returns the x coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the y coordinate.
func (p Point) Y() float64 { return p[1] }

// Orb returns p as an orb.Point.
func (p Point) Orb() orb.Point { return orb.Point(p) }

// Equal reports whether p and q have exactly equal coordinates.
func (p Point) Equal(q Point) bool {
	return orb.Point(p).Equal(orb.Point(q))
}

// IsNaN reports whether either coordinate is NaN.
func (p Point) IsNaN() bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1])
}

// DistanceSquaredTo returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquaredTo(q Point) float64 {
	return planar.DistanceSquared(orb.Point(p), orb.Point(q))
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return planar.Distance(orb.Point(p), orb.Point(q))
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p[0], 'f', -1, 64) + ", " + strconv.FormatFloat(p[1], 'f', -1, 64) + ")"
}

// Compare orders points lexicographically by (x, y).
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Point) int {
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}
	return cmp.Compare(a[1], b[1])
}
