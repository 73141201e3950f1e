// Package geom provides the planar geometry primitives used by the point indexes.
//
// # Types
//
//   - Point: an immutable (x, y) pair compared by exact value equality,
//     backed by orb.Point
//   - Rect: an axis-aligned rectangle with inclusive edges, backed by orb.Bound
//
// Containment and intersection are orb's; distances come from orb/planar.
// Both types convert to their orb counterparts without copying fields, so
// they interoperate with the rest of the orb ecosystem.
//
// # Usage
//
//	r := geom.MustRect(0.25, 0.25, 0.75, 0.75)
//	ok := r.Contains(geom.Pt(0.5, 0.5))
//	d := r.DistanceSquaredTo(geom.Pt(0, 0))
//
// All distances are squared Euclidean distances, which preserve ordering
// without the square root.
package geom
