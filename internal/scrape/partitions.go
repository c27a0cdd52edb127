package scrape

import (
	"context"
	"fmt"
	"log"

	"immo-scraper/internal/concurrency"
)

// Partitions paginates every department on a bounded worker pool and returns
// the union of all records plus a per-department count. A department that
// aborts mid-way contributes what it accumulated; one that panics contributes
// nothing; neither cancels its siblings or fails the run.
func Partitions[T any](
	ctx context.Context,
	depts []string,
	pool concurrency.ParallelOptions,
	opts Options,
	fetch PageFetcher[T],
) ([]T, map[string]int) {
	results, _ := concurrency.ProcessParallel(ctx, depts, pool,
		func(ctx context.Context, _ int, dept string) ([]T, error) {
			records, err := paginateSafe(ctx, dept, opts, fetch)
			if err != nil {
				log.Printf("%v (keeping %d records)", err, len(records))
			}
			// error already absorbed: report records, never fail the pool item
			return records, nil
		})

	var all []T
	counts := make(map[string]int, len(depts))
	for i, dept := range depts {
		counts[dept] = len(results[i])
		all = append(all, results[i]...)
	}
	return all, counts
}

// paginateSafe converts a panicking fetcher into a PartitionError so a single
// bad department cannot take down the run.
func paginateSafe[T any](ctx context.Context, dept string, opts Options, fetch PageFetcher[T]) (records []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = &PartitionError{Dept: dept, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return Paginate(ctx, dept, opts, fetch)
}
