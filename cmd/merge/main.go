package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"immo-scraper/internal/config"
	"immo-scraper/internal/domain"
	"immo-scraper/internal/export"
	"immo-scraper/internal/mappers"
	"immo-scraper/internal/merge"
	"immo-scraper/internal/sftpclient"
	"immo-scraper/internal/sources/seloger"
)

func main() {
	var (
		name       = flag.String("name", "listings", "base name for the merged dataset files")
		uploadSFTP = flag.Bool("sftp", false, "upload the merged dataset via SFTP")
	)
	flag.Parse()

	rootCtx, rootCancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer rootCancel()

	cfg := config.Load()

	// A missing intermediate just means that source was not scraped this run.
	notairesRows, err := readRawCSV(filepath.Join(cfg.OutDir, export.NotairesRawFile))
	if err != nil {
		log.Fatal(err)
	}
	notairesListings := mappers.Notaires(notairesRows)

	depFiles, err := export.LoadDepartmentFiles(cfg.DataDir, domain.SourceBienICI)
	if err != nil {
		log.Fatal(err)
	}
	var bieniciListings []domain.Listing
	for _, df := range depFiles {
		bieniciListings = append(bieniciListings, mappers.BienICI(df.Records, df.Department)...)
	}

	selRecords, err := export.ReadJSONLinesFile[seloger.Record](filepath.Join(cfg.OutDir, export.SeLogerRawFile))
	if err != nil {
		log.Fatal(err)
	}
	selogerListings := mapSeLoger(selRecords)

	merged := merge.Merge(notairesListings, bieniciListings, selogerListings)

	if err := export.WriteDataset(cfg.OutDir, *name, merged); err != nil {
		log.Fatal(err)
	}

	log.Printf(
		"wrote %d listings to %s/%s.{csv,parquet} (notaires=%d, bienici=%d, seloger=%d, before dedup=%d)",
		len(merged),
		cfg.OutDir,
		*name,
		len(notairesListings),
		len(bieniciListings),
		len(selogerListings),
		len(notairesListings)+len(bieniciListings)+len(selogerListings),
	)

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:      cfg.SFTPHost,
			Port:      cfg.SFTPPort,
			User:      cfg.SFTPUser,
			Pass:      cfg.SFTPPass,
			RemoteDir: cfg.SFTPDir,
		}

		upCtx, upCancel := context.WithTimeout(rootCtx, 5*time.Minute)
		defer upCancel()

		paths := []string{
			filepath.Join(cfg.OutDir, *name+".csv"),
			filepath.Join(cfg.OutDir, *name+".parquet"),
		}
		if err := sftpclient.UploadFiles(upCtx, upCfg, paths); err != nil {
			log.Fatal(err)
		}
		log.Printf("uploaded %d files to sftp://%s:%d%s", len(paths), upCfg.Host, upCfg.Port, upCfg.RemoteDir)
	}
}

// mapSeLoger groups the dump back into per-departement batches, keeping the
// departements in file order so the output stays deterministic.
func mapSeLoger(records []seloger.Record) []domain.Listing {
	byDept := make(map[string][]seloger.Annonce)
	var order []string
	for _, r := range records {
		if _, ok := byDept[r.Departement]; !ok {
			order = append(order, r.Departement)
		}
		byDept[r.Departement] = append(byDept[r.Departement], r.Annonce)
	}

	var out []domain.Listing
	for _, dept := range order {
		out = append(out, mappers.SeLoger(byDept[dept], dept)...)
	}
	return out
}

func readRawCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}
