package index

import (
	"errors"
	"iter"

	"github.com/hupe1980/kdgo/geom"
)

var (
	// ErrInvalidArgument is returned when a required point or rectangle is
	// absent, or when a point has a NaN coordinate.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidBounds is returned when an index is configured with an
	// inverted or NaN bounding rectangle.
	ErrInvalidBounds = errors.New("invalid bounds")
)

// PointIndex represents a set of distinct points in the plane.
//
// Implementations are not safe for concurrent use. Any number of readers may
// run once the last writer has returned.
type PointIndex interface {
	// Insert adds p to the set. Inserting a point that is already present is a no-op.
	Insert(p *geom.Point) error

	// Contains reports whether p is in the set.
	Contains(p *geom.Point) (bool, error)

	// Range returns all points of the set inside r, edges included.
	// The order of the result is unspecified.
	Range(r *geom.Rect) ([]geom.Point, error)

	// RangeSeq streams the points inside r. Breaking out of the loop stops the walk.
	RangeSeq(r geom.Rect) iter.Seq[geom.Point]

	// Nearest returns a point of the set closest to p.
	// ok is false if the set is empty.
	Nearest(p *geom.Point) (nearest geom.Point, ok bool, err error)

	// Len returns the number of points in the set.
	Len() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// All yields every point of the set.
	All() iter.Seq[geom.Point]

	// Stats returns structural statistics about the index.
	Stats() Stats
}

// Stats describes the shape of an index.
type Stats struct {
	// Name is the backend name, e.g. "KDTree" or "Flat".
	Name string

	// Size is the number of stored points.
	Size int

	// Height is the number of nodes on the longest root-to-leaf path.
	// Backends without a tree report 0.
	Height int

	// Vertical and Horizontal count the nodes splitting on x and on y.
	Vertical   int
	Horizontal int
}

// CheckPoint validates a point argument.
func CheckPoint(p *geom.Point) error {
	if p == nil {
		return errorf("point is nil")
	}
	if p.IsNaN() {
		return errorf("point %s has a NaN coordinate", *p)
	}
	return nil
}

// CheckRect validates a rectangle argument.
func CheckRect(r *geom.Rect) error {
	if r == nil {
		return errorf("rectangle is nil")
	}
	return nil
}
