package main

import (
	"context"
	"flag"
	"log"
	"time"

	"immo-scraper/internal/concurrency"
	"immo-scraper/internal/config"
	"immo-scraper/internal/domain"
	"immo-scraper/internal/export"
	"immo-scraper/internal/scrape"
	"immo-scraper/internal/sources/bienici"
)

// depRow tags an intermediate CSV row with the departement it belongs to,
// so the fan-out's union can be split back into per-departement files.
type depRow struct {
	dept string
	row  []string
}

func main() {
	filtersPath := flag.String("filters", "configs/sources.yaml", "search filters yaml (optional)")
	flag.Parse()

	rootCtx, rootCancel := context.WithTimeout(context.Background(), 8*time.Hour)
	defer rootCancel()

	cfg := config.Load()
	filters, err := config.LoadFilters(*filtersPath)
	if err != nil {
		log.Printf("WARN: %v (using default filters)", err)
	}

	if cfg.BienICIAccessToken == "" || cfg.BienICISessionID == "" {
		log.Printf("WARN: BIENICI_ACCESS_TOKEN / BIENICI_SESSION_ID not set, requests will likely be rejected")
	}

	depts := filters.Departments
	if len(depts) == 0 {
		depts = domain.Departments()
	}

	client := bienici.New(cfg.BienICIBaseURL, cfg.UserAgent, cfg.BienICIAccessToken, cfg.BienICISessionID, cfg.PageSize)
	client.FilterType = filters.BienICI.FilterType
	client.PropertyTypes = filters.BienICI.PropertyTypes
	client.SortBy = filters.BienICI.SortBy
	client.SortOrder = filters.BienICI.SortOrder

	fetch := func(ctx context.Context, dept string, page int) ([]depRow, error) {
		ads, err := client.FetchPage(ctx, dept, page)
		if err != nil {
			return nil, err
		}
		rows := make([]depRow, 0, len(ads))
		for _, ad := range ads {
			rows = append(rows, depRow{dept: dept, row: bienici.Row(ad)})
		}
		return rows, nil
	}

	tagged, counts := scrape.Partitions(rootCtx, depts,
		concurrency.ParallelOptions{MaxWorkers: cfg.MaxWorkers},
		scrape.Options{MaxPages: cfg.MaxPages, PageSize: cfg.PageSize},
		fetch)

	byDept := make(map[string][][]string)
	for _, tr := range tagged {
		byDept[tr.dept] = append(byDept[tr.dept], tr.row)
	}

	written := 0
	for dept, rows := range byDept {
		if err := export.AppendDepartmentCSV(cfg.DataDir, domain.SourceBienICI, dept, bienici.Header, rows); err != nil {
			log.Fatal(err)
		}
		written++
	}

	log.Printf("wrote %d ads to %s (%d departement files of %d scraped)",
		len(tagged), cfg.DataDir, written, len(counts))
}
