package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/kdgo/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Point returns a point uniformly distributed in [0, 1) x [0, 1).
func (r *RNG) Point() geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return geom.Pt(r.rand.Float64(), r.rand.Float64())
}

// UniformPoints generates num points uniformly distributed in the unit square.
// Duplicates are possible but practically never occur.
func (r *RNG) UniformPoints(num int) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		points[i] = geom.Pt(r.rand.Float64(), r.rand.Float64())
	}
	return points
}

// GridPoints generates num points whose coordinates are multiples of
// 1/cells in [0, 1]. Small cell counts produce many points sharing an x or
// y coordinate as well as exact duplicates, which exercises split-line ties.
func (r *RNG) GridPoints(num, cells int) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	step := 1 / float64(cells)
	points := make([]geom.Point, num)
	for i := range points {
		points[i] = geom.Pt(
			float64(r.rand.Intn(cells+1))*step,
			float64(r.rand.Intn(cells+1))*step,
		)
	}
	return points
}

// Rect returns a random rectangle inside the unit square.
func (r *RNG) Rect() geom.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()

	x0, x1 := r.rand.Float64(), r.rand.Float64()
	y0, y1 := r.rand.Float64(), r.rand.Float64()
	return geom.MustRect(min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1))
}

// GridRect returns a random rectangle whose edges lie on the grid used by
// GridPoints. Degenerate rectangles (zero width or height) are included.
func (r *RNG) GridRect(cells int) geom.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()

	step := 1 / float64(cells)
	x0, x1 := float64(r.rand.Intn(cells+1))*step, float64(r.rand.Intn(cells+1))*step
	y0, y1 := float64(r.rand.Intn(cells+1))*step, float64(r.rand.Intn(cells+1))*step
	return geom.MustRect(min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1))
}

// Shuffle returns a shuffled copy of points.
func (r *RNG) Shuffle(points []geom.Point) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(points)
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Distinct returns the distinct points of points in (x, y) order.
func Distinct(points []geom.Point) []geom.Point {
	out := slices.Clone(points)
	slices.SortFunc(out, geom.Compare)
	return slices.CompactFunc(out, geom.Point.Equal)
}

// BruteForceRange returns the distinct points inside rect in (x, y) order.
func BruteForceRange(points []geom.Point, rect geom.Rect) []geom.Point {
	var out []geom.Point
	for _, p := range Distinct(points) {
		if rect.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// NearestDistance returns the smallest squared distance from q to any of
// points, or +Inf if points is empty.
func NearestDistance(points []geom.Point, q geom.Point) float64 {
	best := math.Inf(1)
	for _, p := range points {
		best = min(best, p.DistanceSquaredTo(q))
	}
	return best
}

// Sorted returns a copy of points in (x, y) order.
func Sorted(points []geom.Point) []geom.Point {
	out := slices.Clone(points)
	slices.SortFunc(out, geom.Compare)
	return out
}
