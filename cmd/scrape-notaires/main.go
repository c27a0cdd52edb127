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
	"immo-scraper/internal/sources/notaires"
)

func main() {
	var (
		outPath     = flag.String("out", "", "output csv path (default <OUT_DIR>/"+export.NotairesRawFile+")")
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

	if *outPath == "" {
		*outPath = filepath.Join(cfg.OutDir, export.NotairesRawFile)
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

	client := notaires.New(cfg.NotairesBaseURL, cfg.UserAgent, filters.Notaires.TransactionTypes, cfg.PageSize)

	fetch := func(ctx context.Context, dept string, page int) ([][]string, error) {
		annonces, err := client.FetchPage(ctx, dept, page)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(annonces))
		for _, a := range annonces {
			rows = append(rows, a.Row(dept))
		}
		return rows, nil
	}

	rows, counts := scrape.Partitions(rootCtx, depts,
		concurrency.ParallelOptions{MaxWorkers: cfg.MaxWorkers},
		scrape.Options{MaxPages: cfg.MaxPages, PageSize: cfg.PageSize},
		fetch)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := export.WriteRawCSV(f, notaires.Header, rows); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	empty := 0
	for _, n := range counts {
		if n == 0 {
			empty++
		}
	}
	log.Printf("wrote %d annonces to %s (%d departements, %d empty)",
		len(rows), *outPath, len(depts), empty)
}
