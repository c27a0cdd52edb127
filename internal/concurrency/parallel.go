// Package concurrency provides a small generic worker pool. One scraping run
// uses exactly one pool: departments are the work items, and workers never
// share state beyond the result slice, which is only written at indexes owned
// by a single task.
package concurrency

import (
	"context"
	"sync"
)

// ParallelOptions configures the worker pool.
type ParallelOptions struct {
	// MaxWorkers bounds how many items are processed at once.
	MaxWorkers int
}

// DefaultOptions matches the thread count the scraping jobs were tuned with.
func DefaultOptions() ParallelOptions {
	return ParallelOptions{MaxWorkers: 10}
}

// ProcessParallel runs itemFunc over items with bounded parallelism and
// returns the results in input order, plus any errors (unordered). A failed
// item leaves its zero value in the result slice; it never stops siblings.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultOptions().MaxWorkers
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	type outcome struct {
		index  int
		result R
		err    error
	}

	jobs := make(chan int, len(items))
	results := make(chan outcome, len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
					r, err := itemFunc(ctx, i, items[i])
					results <- outcome{index: i, result: r, err: err}
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	resultList := make([]R, len(items))
	var errs []error
	for res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
		}
		resultList[res.index] = res.result
	}

	return resultList, errs
}

// ForEach runs itemFunc over items for its side effects only (e.g. writing
// one intermediate file per department).
func ForEach[T any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) error,
) []error {
	_, errs := ProcessParallel(ctx, items, opts, func(ctx context.Context, index int, item T) (struct{}, error) {
		return struct{}{}, itemFunc(ctx, index, item)
	})
	return errs
}
