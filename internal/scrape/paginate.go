// Package scrape drives the per-department pagination loops and the bounded
// fan-out across departments. It is generic over the record type so the three
// source clients share one termination ladder.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// ErrEndOfData is returned by a fetcher when the source explicitly signals
// that pagination is exhausted (the notaires API answers 400 past the last
// page). It is a success condition, not an error to log.
var ErrEndOfData = errors.New("end of data")

// PartitionError reports a pagination loop that aborted before exhaustion.
// Records accumulated before the failure are still returned alongside it.
type PartitionError struct {
	Dept string
	Page int
	Err  error
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("scrape: departement %s aborted at page %d: %v", e.Dept, e.Page, e.Err)
}

func (e *PartitionError) Unwrap() error { return e.Err }

// PageFetcher fetches one page of records for one department.
// It returns ErrEndOfData past the last page; any other error is transient.
type PageFetcher[T any] func(ctx context.Context, dept string, page int) ([]T, error)

// Options bounds one pagination loop.
type Options struct {
	// MaxPages caps pages per department; hitting it is logged as possible
	// truncation. <= 0 means no ceiling.
	MaxPages int
	// PageSize is the requested page size; a shorter page means the last one.
	PageSize int
}

// Paginate fetches pages 1,2,3... for one department until the source is
// exhausted, accumulating every record. Termination, checked in order after
// each fetch: ErrEndOfData; an empty page; a short page (accumulated, then
// stop); the MaxPages ceiling.
//
// On a transient failure the loop aborts immediately and returns what was
// accumulated with a *PartitionError: skipping the broken page and carrying
// on would make "no more data" and "data we failed to see" indistinguishable
// in the output. Already-accumulated records are never discarded.
func Paginate[T any](ctx context.Context, dept string, opts Options, fetch PageFetcher[T]) ([]T, error) {
	var all []T

	for page := 1; ; page++ {
		if opts.MaxPages > 0 && page > opts.MaxPages {
			log.Printf("scrape: departement %s hit the %d-page ceiling, results may be truncated", dept, opts.MaxPages)
			return all, nil
		}

		records, err := fetch(ctx, dept, page)
		if errors.Is(err, ErrEndOfData) {
			return all, nil
		}
		if err != nil {
			return all, &PartitionError{Dept: dept, Page: page, Err: err}
		}

		if len(records) == 0 {
			// natural exhaustion even without an explicit end-of-data status
			return all, nil
		}

		all = append(all, records...)

		if opts.PageSize > 0 && len(records) < opts.PageSize {
			return all, nil
		}
	}
}
