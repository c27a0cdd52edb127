package scrape

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"immo-scraper/internal/concurrency"
)

type row struct {
	Dept string
	N    int
}

// fullPages returns a fetcher serving exactly `pages` full pages of `size`
// records, then an empty page.
func fullPages(size, pages int, calls *int32) PageFetcher[row] {
	return func(ctx context.Context, dept string, page int) ([]row, error) {
		atomic.AddInt32(calls, 1)
		if page > pages {
			return nil, nil
		}
		out := make([]row, size)
		for i := range out {
			out[i] = row{Dept: dept, N: (page-1)*size + i}
		}
		return out, nil
	}
}

func TestPaginateStopsOnEmptyPage(t *testing.T) {
	var calls int32
	records, err := Paginate(context.Background(), "75", Options{MaxPages: 200, PageSize: 50}, fullPages(50, 3, &calls))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 150 {
		t.Errorf("Expected 150 records, got %d", len(records))
	}
	if calls != 4 {
		t.Errorf("Expected exactly 4 fetch calls, got %d", calls)
	}
}

func TestPaginateStopsOnShortPage(t *testing.T) {
	var calls int32
	fetch := func(ctx context.Context, dept string, page int) ([]row, error) {
		atomic.AddInt32(&calls, 1)
		if page == 1 {
			return make([]row, 50), nil
		}
		return make([]row, 12), nil // short page: last one, must be kept
	}
	records, err := Paginate(context.Background(), "13", Options{PageSize: 50}, fetch)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 62 {
		t.Errorf("Expected 62 records, got %d", len(records))
	}
	if calls != 2 {
		t.Errorf("Expected 2 fetch calls, got %d", calls)
	}
}

func TestPaginateStopsOnEndOfData(t *testing.T) {
	fetch := func(ctx context.Context, dept string, page int) ([]row, error) {
		if page == 3 {
			return nil, ErrEndOfData
		}
		return make([]row, 50), nil
	}
	records, err := Paginate(context.Background(), "2A", Options{PageSize: 50}, fetch)
	if err != nil {
		t.Fatalf("End of data is not an error, got %v", err)
	}
	if len(records) != 100 {
		t.Errorf("Expected 100 records, got %d", len(records))
	}
}

func TestPaginateHitsPageCeiling(t *testing.T) {
	var calls int32
	records, err := Paginate(context.Background(), "69", Options{MaxPages: 5, PageSize: 50}, fullPages(50, 1000, &calls))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 250 {
		t.Errorf("Expected 250 records (5 pages), got %d", len(records))
	}
	if calls != 5 {
		t.Errorf("Expected 5 fetch calls, got %d", calls)
	}
}

func TestPaginateAbortsOnTransientFailure(t *testing.T) {
	boom := errors.New("connection reset")
	fetch := func(ctx context.Context, dept string, page int) ([]row, error) {
		if page == 3 {
			return nil, boom
		}
		return make([]row, 50), nil
	}
	records, err := Paginate(context.Background(), "33", Options{PageSize: 50}, fetch)

	var perr *PartitionError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *PartitionError, got %v", err)
	}
	if perr.Dept != "33" || perr.Page != 3 {
		t.Errorf("Unexpected partition error %+v", perr)
	}
	if !errors.Is(err, boom) {
		t.Error("Expected the cause to be wrapped")
	}
	// accumulated pages survive the abort
	if len(records) != 100 {
		t.Errorf("Expected the 100 accumulated records, got %d", len(records))
	}
}

func TestPartitionsUnion(t *testing.T) {
	depts := []string{"01", "02", "03"}
	var calls int32
	all, counts := Partitions(context.Background(), depts, concurrency.DefaultOptions(),
		Options{PageSize: 10}, fullPages(10, 2, &calls))

	if len(all) != 60 {
		t.Errorf("Expected 60 records, got %d", len(all))
	}
	for _, d := range depts {
		if counts[d] != 20 {
			t.Errorf("Expected 20 records for %s, got %d", d, counts[d])
		}
	}
}

func TestPartitionsIsolatesPanics(t *testing.T) {
	depts := []string{"01", "02", "03", "04", "05"}
	fetch := func(ctx context.Context, dept string, page int) ([]row, error) {
		if dept == "03" {
			panic(fmt.Sprintf("unexpected shape for %s", dept))
		}
		if page > 1 {
			return nil, nil
		}
		return []row{{Dept: dept}}, nil
	}

	all, counts := Partitions(context.Background(), depts, concurrency.DefaultOptions(),
		Options{PageSize: 10}, fetch)

	if len(all) != 4 {
		t.Errorf("Expected records from the 4 healthy departments, got %d", len(all))
	}
	if counts["03"] != 0 {
		t.Errorf("Expected the panicking department to contribute nothing, got %d", counts["03"])
	}
	for _, d := range []string{"01", "02", "04", "05"} {
		if counts[d] != 1 {
			t.Errorf("Expected 1 record for %s, got %d", d, counts[d])
		}
	}
}
