package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"immo-scraper/internal/concurrency"
	"immo-scraper/internal/config"
	"immo-scraper/internal/domain"
	"immo-scraper/internal/export"
	"immo-scraper/internal/scrape"
	"immo-scraper/internal/sources/seloger"
)

func main() {
	var (
		outPath     = flag.String("out", "", "output jsonl path (default <OUT_DIR>/"+export.SeLogerRawFile+")")
		filtersPath = flag.String("filters", "configs/sources.yaml", "search filters yaml (optional)")
	)
	flag.Parse()

	rootCtx, rootCancel := context.WithTimeout(context.Background(), 8*time.Hour)
	defer rootCancel()

	cfg := config.Load()
	filters, err := config.LoadFilters(*filtersPath)
	if err != nil {
		log.Printf("WARN: %v (using default filters)", err)
	}

	if cfg.SeLogerCookie == "" {
		log.Printf("WARN: SELOGER_COOKIE not set, requests will likely be rejected")
	}

	if *outPath == "" {
		*outPath = filepath.Join(cfg.OutDir, export.SeLogerRawFile)
	}
	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	depts := filters.Departments
	if len(depts) == 0 {
		depts = domain.Departments()
	}

	client := seloger.New(cfg.SeLogerBaseURL, cfg.UserAgent, cfg.SeLogerCookie, cfg.PageSize)
	client.DistributionTypes = filters.SeLoger.DistributionTypes
	client.EstateTypes = filters.SeLoger.EstateTypes
	client.ProjectTypes = filters.SeLoger.ProjectTypes

	fetch := func(ctx context.Context, dept string, page int) ([]seloger.Record, error) {
		ads, err := client.FetchPage(ctx, dept, page)
		if err != nil {
			return nil, err
		}
		records := make([]seloger.Record, 0, len(ads))
		for _, ad := range ads {
			records = append(records, seloger.Record{Departement: dept, Annonce: ad})
		}
		return records, nil
	}

	records, counts := scrape.Partitions(rootCtx, depts,
		concurrency.ParallelOptions{MaxWorkers: cfg.MaxWorkers},
		scrape.Options{MaxPages: cfg.MaxPages, PageSize: cfg.PageSize},
		fetch)

	if err := export.WriteJSONLinesFile(*outPath, records); err != nil {
		log.Fatal(err)
	}

	empty := 0
	for _, n := range counts {
		if n == 0 {
			empty++
		}
	}
	log.Printf("wrote %d annonces to %s (%d departements, %d empty)",
		len(records), *outPath, len(depts), empty)
}
