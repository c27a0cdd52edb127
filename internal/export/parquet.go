package export

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"immo-scraper/internal/domain"
)

// listingParquet mirrors the canonical CSV columns. Optional columns are
// pointers so nulls survive the round trip instead of collapsing to zeros.
type listingParquet struct {
	ID           string   `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price        *int64   `parquet:"name=price, type=INT64, repetitiontype=OPTIONAL"`
	SurfaceArea  *float64 `parquet:"name=surface_area, type=DOUBLE, repetitiontype=OPTIONAL"`
	PricePerArea *float64 `parquet:"name=price_per_area, type=DOUBLE, repetitiontype=OPTIONAL"`
	RoomCount    *int64   `parquet:"name=room_count, type=INT64, repetitiontype=OPTIONAL"`
	BedroomCount *int64   `parquet:"name=bedroom_count, type=INT64, repetitiontype=OPTIONAL"`
	PropertyType string   `parquet:"name=property_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	City         string   `parquet:"name=city, type=BYTE_ARRAY, convertedtype=UTF8"`
	PostalCode   *string  `parquet:"name=postal_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Department   string   `parquet:"name=administrative_region_code, type=BYTE_ARRAY, convertedtype=UTF8"`
	Latitude     *float64 `parquet:"name=latitude, type=DOUBLE, repetitiontype=OPTIONAL"`
	Longitude    *float64 `parquet:"name=longitude, type=DOUBLE, repetitiontype=OPTIONAL"`
	Description  *string  `parquet:"name=description, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	URL          *string  `parquet:"name=url, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Source       string   `parquet:"name=source, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// WriteParquet writes the canonical listing table as a snappy-compressed
// parquet file at path.
func WriteParquet(path string, listings []domain.Listing) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("parquet: create %s: %w", path, err)
	}

	pw, err := writer.NewParquetWriter(fw, new(listingParquet), 2)
	if err != nil {
		fw.Close()
		return fmt.Errorf("parquet: new writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, l := range listings {
		row := listingParquet{
			ID:           l.ID,
			Price:        l.Price,
			SurfaceArea:  l.SurfaceArea,
			PricePerArea: l.PricePerArea,
			RoomCount:    l.RoomCount,
			BedroomCount: l.BedroomCount,
			PropertyType: l.PropertyType,
			City:         l.City,
			PostalCode:   l.PostalCode,
			Department:   l.Department,
			Latitude:     l.Latitude,
			Longitude:    l.Longitude,
			Description:  l.Description,
			URL:          l.URL,
			Source:       l.Source,
		}
		if err := pw.Write(row); err != nil {
			pw.WriteStop()
			fw.Close()
			return fmt.Errorf("parquet: write row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("parquet: finalize: %w", err)
	}
	return fw.Close()
}
