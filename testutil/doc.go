// Package testutil provides testing utilities for kdgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random points and rectangles and for
// computing exact query answers by brute force.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	ps := rng.UniformPoints(1000)      // uniform in [0, 1) x [0, 1)
//	grid := rng.GridPoints(1000, 16)   // many shared coordinates
//	r := rng.Rect()                    // random rectangle in the unit square
//
// # Ground Truth
//
//	want := testutil.BruteForceRange(ps, r)
//	d := testutil.NearestDistance(ps, q)
package testutil
