package geom

import (
	"math"
	"slices"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint(t *testing.T) {
	t.Run("Equal", func(t *testing.T) {
		assert.True(t, Pt(0.1, 0.2).Equal(Pt(0.1, 0.2)))
		assert.False(t, Pt(0.1, 0.2).Equal(Pt(0.2, 0.1)))
		assert.True(t, Pt(0, 0).Equal(Pt(math.Copysign(0, -1), 0)))
	})

	t.Run("DistanceSquaredTo", func(t *testing.T) {
		assert.InDelta(t, 25.0, Pt(0, 0).DistanceSquaredTo(Pt(3, 4)), 1e-12)
		assert.InDelta(t, 5.0, Pt(0, 0).DistanceTo(Pt(3, 4)), 1e-12)
		assert.Zero(t, Pt(0.3, 0.3).DistanceSquaredTo(Pt(0.3, 0.3)))
	})

	t.Run("IsNaN", func(t *testing.T) {
		assert.False(t, Pt(0, 1).IsNaN())
		assert.True(t, Pt(math.NaN(), 1).IsNaN())
		assert.True(t, Pt(0, math.NaN()).IsNaN())
	})

	t.Run("Compare", func(t *testing.T) {
		ps := []Point{Pt(0.5, 0.1), Pt(0.1, 0.9), Pt(0.1, 0.2), Pt(0.5, 0.0)}
		slices.SortFunc(ps, Compare)
		assert.Equal(t, []Point{Pt(0.1, 0.2), Pt(0.1, 0.9), Pt(0.5, 0.0), Pt(0.5, 0.1)}, ps)
		assert.Equal(t, 0, Compare(Pt(0.3, 0.3), Pt(0.3, 0.3)))
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "(0.1, 0.25)", Pt(0.1, 0.25).String())
	})

	t.Run("Orb", func(t *testing.T) {
		p := Pt(0.1, 0.25)
		assert.Equal(t, orb.Point{0.1, 0.25}, p.Orb())
		assert.Equal(t, 0.1, p.X())
		assert.Equal(t, 0.25, p.Y())
	})
}

func TestRect(t *testing.T) {
	t.Run("NewRect", func(t *testing.T) {
		r, err := NewRect(0, 0, 1, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r.Width())
		assert.Equal(t, 0.5, r.Height())

		_, err = NewRect(1, 0, 0, 1)
		assert.Error(t, err)
		_, err = NewRect(0, math.NaN(), 1, 1)
		assert.Error(t, err)

		assert.Panics(t, func() { MustRect(0, 1, 1, 0) })
	})

	t.Run("Degenerate", func(t *testing.T) {
		r := MustRect(0.5, 0.5, 0.5, 0.5)
		assert.True(t, r.Valid())
		assert.True(t, r.Contains(Pt(0.5, 0.5)))
		assert.False(t, r.Contains(Pt(0.5, 0.50001)))
	})

	t.Run("Contains", func(t *testing.T) {
		r := MustRect(0.2, 0.2, 0.4, 0.6)
		tests := []struct {
			name string
			p    Point
			want bool
		}{
			{"Inside", Pt(0.3, 0.3), true},
			{"LeftEdge", Pt(0.2, 0.3), true},
			{"TopEdge", Pt(0.3, 0.6), true},
			{"Corner", Pt(0.4, 0.2), true},
			{"Left", Pt(0.1, 0.3), false},
			{"Above", Pt(0.3, 0.7), false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, r.Contains(tt.p))
			})
		}
	})

	t.Run("Intersects", func(t *testing.T) {
		r := MustRect(0.2, 0.2, 0.4, 0.4)
		tests := []struct {
			name  string
			other Rect
			want  bool
		}{
			{"Overlap", MustRect(0.3, 0.3, 0.5, 0.5), true},
			{"Inside", MustRect(0.25, 0.25, 0.3, 0.3), true},
			{"Enclosing", UnitSquare, true},
			{"EdgeTouch", MustRect(0.4, 0.0, 0.6, 1.0), true},
			{"CornerTouch", MustRect(0.4, 0.4, 0.6, 0.6), true},
			{"Degenerate", MustRect(0.3, 0.2, 0.3, 0.2), true},
			{"Right", MustRect(0.41, 0.2, 0.6, 0.4), false},
			{"Below", MustRect(0.2, 0.0, 0.4, 0.19), false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, r.Intersects(tt.other))
				assert.Equal(t, tt.want, tt.other.Intersects(r))
			})
		}
	})

	t.Run("DistanceSquaredTo", func(t *testing.T) {
		r := MustRect(0.2, 0.2, 0.4, 0.4)
		assert.Zero(t, r.DistanceSquaredTo(Pt(0.3, 0.3)))
		assert.Zero(t, r.DistanceSquaredTo(Pt(0.2, 0.4)))
		assert.InDelta(t, 0.01, r.DistanceSquaredTo(Pt(0.1, 0.3)), 1e-12)
		assert.InDelta(t, 0.01, r.DistanceSquaredTo(Pt(0.3, 0.5)), 1e-12)
		assert.InDelta(t, 0.02, r.DistanceSquaredTo(Pt(0.5, 0.5)), 1e-12)
		assert.InDelta(t, math.Sqrt(0.08), r.DistanceTo(Pt(0, 0)), 1e-12)
	})

	t.Run("Clamp", func(t *testing.T) {
		r := MustRect(0.2, 0.2, 0.4, 0.4)
		assert.Equal(t, Pt(0.3, 0.3), r.Clamp(Pt(0.3, 0.3)))
		assert.Equal(t, Pt(0.2, 0.4), r.Clamp(Pt(0, 0.9)))
		assert.Equal(t, Pt(0.4, 0.3), r.Clamp(Pt(0.5, 0.3)))
	})

	t.Run("Plane", func(t *testing.T) {
		assert.True(t, Plane.Valid())
		assert.True(t, Plane.Contains(Pt(-1e300, 1e300)))
		assert.True(t, Plane.Intersects(MustRect(5, 5, 6, 6)))
		assert.Zero(t, Plane.DistanceSquaredTo(Pt(42, -42)))

		left, right := Plane.SplitX(0.5)
		assert.False(t, left.Contains(Pt(0.6, 0)))
		assert.True(t, right.Contains(Pt(0.6, 0)))
		assert.InDelta(t, 0.01, left.DistanceSquaredTo(Pt(0.6, 100)), 1e-12)
	})

	t.Run("Bound", func(t *testing.T) {
		r := MustRect(0, 0.1, 1, 0.5)
		b := r.Bound()
		assert.Equal(t, orb.Bound{Min: orb.Point{0, 0.1}, Max: orb.Point{1, 0.5}}, b)
		assert.Equal(t, 0.0, r.XMin())
		assert.Equal(t, 0.1, r.YMin())
		assert.Equal(t, 1.0, r.XMax())
		assert.Equal(t, 0.5, r.YMax())
		assert.False(t, Rect{Min: orb.Point{1, 0}, Max: orb.Point{0, 1}}.Valid())
	})

	t.Run("Split", func(t *testing.T) {
		left, right := UnitSquare.SplitX(0.3)
		assert.Equal(t, MustRect(0, 0, 0.3, 1), left)
		assert.Equal(t, MustRect(0.3, 0, 1, 1), right)

		below, above := right.SplitY(0.6)
		assert.Equal(t, MustRect(0.3, 0, 1, 0.6), below)
		assert.Equal(t, MustRect(0.3, 0.6, 1, 1), above)
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "[0, 1] x [0, 0.5]", MustRect(0, 0, 1, 0.5).String())
	})
}
