package pathz

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Query is one search in a Parallel batch.
type Query[N Node[N]] struct {
	Grid  Graph[N]
	Start N
	Goal  N
}

// Parallel runs independent queries concurrently, one fresh Session per
// query, and returns one Result per query in input order.
//
// The epoch invariant forbids two in-flight searches over the same nodes,
// so every query MUST use its own node population (one grid per query).
// Parallel cannot verify this; handing it two queries that share nodes
// corrupts both searches.
//
// ctx gates query startup only: queries not yet started when ctx is
// canceled fail with the context error, but a search already running goes
// to completion, as FindPath has no cancellation points. Per-query failures
// are combined into the returned error; inspect Results[i].Found or unwrap
// with errors.Is to tell them apart.
func Parallel[N Node[N]](ctx context.Context, queries []Query[N], opts ...Option) ([]Result[N], error) {
	results := make([]Result[N], len(queries))
	errs := make([]error, len(queries))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.NumCPU())
	for i, q := range queries {
		i, q := i, q
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = fmt.Errorf("query %d: %w", i, err)
				return nil
			}
			res, err := New[N](opts...).FindPath(q.Grid, q.Start, q.Goal)
			results[i] = res
			if err != nil {
				errs[i] = fmt.Errorf("query %d: %w", i, err)
			}
			return nil
		})
	}
	// Workers report failures through errs, never through the group.
	_ = grp.Wait()

	return results, multierr.Combine(errs...)
}
