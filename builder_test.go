package kdgo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/kdgo"
	"github.com/hupe1980/kdgo/geom"
	"github.com/paulmach/orb"
)

func TestBuilder_KDTree_Basic(t *testing.T) {
	db, err := kdgo.KDTree().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	p := geom.Pt(0.5, 0.5)
	if err := db.Insert(ctx, &p); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if st := db.Stats(); st.Name != "KDTree" || st.Size != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestBuilder_KDTree_FullOptions(t *testing.T) {
	metrics := &kdgo.BasicMetricsCollector{}
	db, err := kdgo.KDTree().
		Bounds(geom.MustRect(-1, -1, 1, 1)).
		Logger(kdgo.NoopLogger()).
		Metrics(metrics).
		Concurrency(2).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	p := geom.Pt(-0.5, 0.5)
	if err := db.Insert(ctx, &p); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if got := metrics.GetStats().InsertCount; got != 1 {
		t.Fatalf("expected 1 recorded insert, got %d", got)
	}
}

func TestBuilder_KDTree_InvalidBounds(t *testing.T) {
	_, err := kdgo.KDTree().
		Bounds(geom.Rect{Min: orb.Point{1, 1}, Max: orb.Point{0, 0}}).
		Build()
	if !errors.Is(err, kdgo.ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestBuilder_Immutable(t *testing.T) {
	base := kdgo.KDTree()
	wide := base.Bounds(geom.MustRect(0, 0, 10, 10))

	a, err := base.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, err := wide.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	ctx := context.Background()
	p := geom.Pt(5, 5)
	q := geom.Pt(4, 4)
	for _, db := range []*kdgo.DB{a, b} {
		if err := db.Insert(ctx, &p); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, found, err := b.Nearest(ctx, &q)
	if err != nil || !found || got != p {
		t.Fatalf("unexpected nearest: %v %v %v", got, found, err)
	}

	// Deriving wide must not have changed the base builder.
	unit, err := base.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	_, err = unit.BatchInsert(ctx, []geom.Point{geom.Pt(0.5, 0.5)})
	if err != nil {
		t.Fatalf("BatchInsert failed: %v", err)
	}
	if a.Stats().Name != unit.Stats().Name {
		t.Fatal("builders produced different backends")
	}
}

func TestBuilder_Flat(t *testing.T) {
	db, err := kdgo.Flat().
		Logger(kdgo.NoopLogger()).
		Metrics(kdgo.NoopMetricsCollector{}).
		Concurrency(1).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	p := geom.Pt(0.1, 0.2)
	if err := db.Insert(ctx, &p); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if st := db.Stats(); st.Name != "Flat" || st.Size != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}
