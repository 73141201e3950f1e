// Package kdgo provides an embedded point index for the plane.
//
// The default backend is a 2d-tree: a binary search tree whose split axis
// alternates between x and y by depth. It answers membership, range and
// nearest-neighbour queries over a set of distinct points, by default in the
// unit square. A brute-force backend with the same contract is available for
// small sets and as a reference.
//
// # Quick Start
//
//	ctx := context.Background()
//	db, err := kdgo.KDTree().Build()
//	if err != nil {
//	    panic(err)
//	}
//	defer db.Close()
//
//	p := geom.Pt(0.2, 0.3)
//	_ = db.Insert(ctx, &p)
//
//	r := geom.MustRect(0, 0, 0.5, 0.5)
//	inside, _ := db.Range(ctx, &r)
//
//	q := geom.Pt(0.9, 0.9)
//	nearest, found, _ := db.Nearest(ctx, &q)
//
// # Batch Operations
//
//	added, err := db.BatchInsert(ctx, points)
//	results, err := db.NearestBatch(ctx, queries) // parallel readers
//
// # Streaming
//
//	for p, err := range db.RangeStream(ctx, r) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    process(p)
//	}
//
// # Concurrency
//
// A DB may be shared between goroutines. Inserts are serialized and queries
// run concurrently with each other. The index packages below kdgo are not
// synchronized.
//
// # Errors
//
// A nil point or rectangle, or a point with a NaN coordinate, fails with
// ErrInvalidArgument and leaves the index unchanged. Coordinates outside the
// configured bounds are accepted, answered correctly by every query, and
// logged as a warning.
package kdgo
