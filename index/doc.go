// Package index provides point index interfaces and implementations.
//
// Two backends satisfy the PointIndex interface:
//
//   - kdtree: a 2d-tree whose split axis alternates between x and y by depth
//   - flat: a sorted point set answering queries by linear scan
//
// # Index Selection
//
//   - KDTree: expected logarithmic insert, membership and nearest-neighbour
//     queries, and range queries proportional to the output size
//   - Flat: exact reference answers, useful for small sets and for
//     differential testing of the tree
//
// # Arguments
//
// Points and rectangles are passed by pointer. A nil argument fails with
// ErrInvalidArgument before any state changes:
//
//	err := idx.Insert(nil) // errors.Is(err, index.ErrInvalidArgument)
//
// Coordinates outside the configured bounds are accepted and queried like
// any other point.
//
// # Subpackages
//
//   - kdtree: the 2d-tree
//   - flat: the brute-force point set
package index
