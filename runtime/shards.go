// Package runtime splits per-message work into contiguous shards.
// Shards accumulate locally; results are merged once, in shard order,
// so the outcome does not depend on scheduling.
package runtime

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Span is the half-open index range [Start, End) of one shard.
type Span struct {
	Start int
	End   int
}

// Spans cuts n items into at most workers contiguous spans of similar size.
func Spans(n, workers int) []Span {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	spans := make([]Span, 0, workers)
	for start := 0; start < n; start += size {
		spans = append(spans, Span{Start: start, End: min(start+size, n)})
	}
	return spans
}

// Reduce runs shard over every span concurrently and hands each result to merge,
// in span order, once all shards succeeded.
func Reduce[R any](ctx context.Context, n, workers int,
	shard func(ctx context.Context, span Span) (R, error),
	merge func(R)) error {
	spans := Spans(n, workers)
	results := make([]R, len(spans))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, span := range spans {
		g.Go(func() error {
			r, err := shard(gCtx, span)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, r := range results {
		merge(r)
	}
	return nil
}
