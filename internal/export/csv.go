// Package export persists listing data: raw per-source intermediates, the
// merged canonical CSV, and a parquet copy of the same table.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"immo-scraper/internal/domain"
)

// Canonical merged-table columns. Keep header order EXACT, the analysis
// notebooks downstream select by position as well as by name.
var canonicalHeader = []string{
	"id",
	"price",
	"surface_area",
	"price_per_area",
	"room_count",
	"bedroom_count",
	"property_type",
	"city",
	"postal_code",
	"administrative_region_code",
	"latitude",
	"longitude",
	"description",
	"url",
	"source",
}

// WriteCSV writes the canonical listing table. Nil fields become empty cells.
func WriteCSV(w io.Writer, listings []domain.Listing) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(canonicalHeader); err != nil {
		return err
	}
	for _, l := range listings {
		if err := cw.Write(toCanonicalRow(l)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toCanonicalRow(l domain.Listing) []string {
	return []string{
		l.ID,
		intCell(l.Price),
		floatCell(l.SurfaceArea),
		moneyCell(l.PricePerArea),
		intCell(l.RoomCount),
		intCell(l.BedroomCount),
		l.PropertyType,
		l.City,
		strCell(l.PostalCode),
		l.Department,
		floatCell(l.Latitude),
		floatCell(l.Longitude),
		strCell(l.Description),
		strCell(l.URL),
		l.Source,
	}
}

func intCell(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

func floatCell(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// moneyCell always shows 2 decimals so prix/m2 columns stay aligned.
func moneyCell(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}

func strCell(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// WriteRawCSV writes an already row-shaped intermediate (header + rows),
// used by the scrape jobs for their fixed-layout dumps.
func WriteRawCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
