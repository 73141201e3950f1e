// Package kdtree provides a 2d-tree: a binary search tree over points in the
// plane whose comparison axis alternates between x and y by depth.
//
// The tree is never rebalanced, so its shape is a function of insertion
// order. Every node stores the rectangle of the plane it is responsible for,
// computed once when the node is created; range and nearest-neighbour queries
// use these rectangles to prune subtrees. The root covers the whole plane, so
// results do not depend on the configured bounds.
//
// A Tree is not safe for concurrent use.
package kdtree

import (
	"fmt"
	"iter"

	"github.com/hupe1980/kdgo/geom"
	"github.com/hupe1980/kdgo/index"
)

// Compile-time check to ensure Tree satisfies the index interface.
var _ index.PointIndex = (*Tree)(nil)

// Orientation is the split direction of a node.
type Orientation bool

const (
	// Vertical nodes split the plane with a vertical line and compare x.
	Vertical Orientation = true
	// Horizontal nodes split the plane with a horizontal line and compare y.
	Horizontal Orientation = false
)

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// node is a tree node. Nodes are created by Insert and never change afterwards,
// apart from filling an empty child slot.
type node struct {
	point  geom.Point
	id     uint32
	rect   geom.Rect // region of the plane covered by this subtree
	orient Orientation
	below  *node // x < point.x (vertical) or y <= point.y (horizontal)
	above  *node // x >= point.x (vertical) or y > point.y (horizontal)
}

// goesAbove reports whether p belongs to the above/right subtree of n.
//
// Vertical nodes send ties on x above, horizontal nodes send ties on y below.
// The asymmetry decides which subtree points on a split line end up in and
// must not be changed.
func (n *node) goesAbove(p geom.Point) bool {
	if n.orient == Vertical {
		return p.X() >= n.point.X()
	}
	return p.Y() > n.point.Y()
}

// childRects returns the regions of the below and above subtrees.
func (n *node) childRects() (below, above geom.Rect) {
	if n.orient == Vertical {
		return n.rect.SplitX(n.point.X())
	}
	return n.rect.SplitY(n.point.Y())
}

// Options contains configuration options for the tree.
type Options struct {
	// Bounds is the region the points are expected to lie in.
	// Points outside Bounds are stored and queried like any other; callers
	// use Bounds to flag them.
	Bounds geom.Rect
}

// DefaultOptions contains the default configuration options for the tree.
var DefaultOptions = Options{
	Bounds: geom.UnitSquare,
}

// Tree is a 2d-tree holding a set of distinct points.
type Tree struct {
	root *node
	size int
	opts Options

	// nodes indexes every node by its insertion id.
	nodes []*node
}

// New creates an empty tree.
func New(optFns ...func(o *Options)) (*Tree, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if !opts.Bounds.Valid() {
		return nil, fmt.Errorf("kdtree: %w: %s", index.ErrInvalidBounds, opts.Bounds)
	}

	return &Tree{opts: opts}, nil
}

// Name returns the backend name.
func (*Tree) Name() string { return "KDTree" }

// Bounds returns the configured region the points are expected to lie in.
func (t *Tree) Bounds() geom.Rect { return t.opts.Bounds }

// Len returns the number of points in the tree.
func (t *Tree) Len() int { return t.size }

// IsEmpty reports whether the tree holds no points.
func (t *Tree) IsEmpty() bool { return t.size == 0 }

// Insert adds p to the tree. Inserting a point already present is a no-op.
func (t *Tree) Insert(p *geom.Point) error {
	if err := index.CheckPoint(p); err != nil {
		return fmt.Errorf("kdtree: insert: %w", err)
	}
	pt := *p

	if t.root == nil {
		t.root = t.newNode(pt, geom.Plane, Vertical)
		return nil
	}

	n := t.root
	for {
		if n.point.Equal(pt) {
			return nil
		}
		below, above := n.childRects()
		if n.goesAbove(pt) {
			if n.above == nil {
				n.above = t.newNode(pt, above, !n.orient)
				return nil
			}
			n = n.above
		} else {
			if n.below == nil {
				n.below = t.newNode(pt, below, !n.orient)
				return nil
			}
			n = n.below
		}
	}
}

func (t *Tree) newNode(p geom.Point, rect geom.Rect, orient Orientation) *node {
	n := &node{
		point:  p,
		id:     uint32(len(t.nodes)),
		rect:   rect,
		orient: orient,
	}
	t.nodes = append(t.nodes, n)
	t.size++
	return n
}

// Contains reports whether p is in the tree.
func (t *Tree) Contains(p *geom.Point) (bool, error) {
	if err := index.CheckPoint(p); err != nil {
		return false, fmt.Errorf("kdtree: contains: %w", err)
	}
	return t.find(*p) != nil, nil
}

func (t *Tree) find(p geom.Point) *node {
	n := t.root
	for n != nil {
		if n.point.Equal(p) {
			return n
		}
		if n.goesAbove(p) {
			n = n.above
		} else {
			n = n.below
		}
	}
	return nil
}

// ID returns the insertion id of p, if p is in the tree.
// Ids are assigned densely from zero in insertion order.
func (t *Tree) ID(p geom.Point) (uint32, bool) {
	n := t.find(p)
	if n == nil {
		return 0, false
	}
	return n.id, true
}

// Point returns the point with the given insertion id.
func (t *Tree) Point(id uint32) (geom.Point, bool) {
	if int(id) >= len(t.nodes) {
		return geom.Point{}, false
	}
	return t.nodes[id].point, true
}

// All yields every point of the tree in pre-order.
func (t *Tree) All() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		t.walk(t.root, func(n *node) bool { return yield(n.point) })
	}
}

// walk visits the subtree rooted at n in pre-order until fn returns false.
func (t *Tree) walk(n *node, fn func(n *node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	return t.walk(n.below, fn) && t.walk(n.above, fn)
}
