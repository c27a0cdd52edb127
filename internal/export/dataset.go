package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"immo-scraper/internal/domain"
)

// Intermediate file names shared by the scrape jobs and the merge job.
const (
	NotairesRawFile = "notaires_raw.csv"
	SeLogerRawFile  = "seloger_raw.jsonl"
)

// WriteDataset writes the merged table under dir as <name>.csv and
// <name>.parquet. Both formats are attempted even if one fails, and the
// returned error aggregates whatever went wrong.
func WriteDataset(dir, name string, listings []domain.Listing) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", dir, err)
	}

	var errs []error

	csvPath := filepath.Join(dir, name+".csv")
	f, err := os.Create(csvPath)
	if err != nil {
		errs = append(errs, fmt.Errorf("export: create %s: %w", csvPath, err))
	} else {
		if err := WriteCSV(f, listings); err != nil {
			errs = append(errs, fmt.Errorf("export: write %s: %w", csvPath, err))
		}
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("export: close %s: %w", csvPath, err))
		}
	}

	if err := WriteParquet(filepath.Join(dir, name+".parquet"), listings); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
