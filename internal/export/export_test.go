package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"immo-scraper/internal/domain"
)

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:           "N-1",
			Price:        domain.IntPtr(210000),
			SurfaceArea:  domain.FloatPtr(63.5),
			PricePerArea: domain.FloatPtr(3307.09),
			RoomCount:    domain.IntPtr(3),
			BedroomCount: domain.IntPtr(2),
			PropertyType: "MAISON",
			City:         "Aix-en-Provence",
			PostalCode:   domain.StringPtr("13100"),
			Department:   "13",
			URL:          domain.StringPtr("https://example.test/N-1"),
			Source:       domain.SourceNotaires,
		},
		{
			ID:         "S-2",
			Price:      domain.IntPtr(0),
			Department: "2A",
			Source:     domain.SourceSeLoger,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleListings()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "id,price,surface_area,price_per_area,room_count,bedroom_count,property_type,city,postal_code,administrative_region_code,latitude,longitude,description,url,source" {
		t.Errorf("CSV header is incorrect: %s", lines[0])
	}
	if lines[1] != "N-1,210000,63.5,3307.09,3,2,MAISON,Aix-en-Provence,13100,13,,,,https://example.test/N-1,notaires" {
		t.Errorf("First row is incorrect: %s", lines[1])
	}
	// nil fields are empty cells, the 0 price stays a 0
	if lines[2] != "S-2,0,,,,,,,,2A,,,,,seloger" {
		t.Errorf("Second row is incorrect: %s", lines[2])
	}
}

func TestWriteDataset(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDataset(dir, "listings", sampleListings()); err != nil {
		t.Fatalf("WriteDataset() error = %v", err)
	}

	csvInfo, err := os.Stat(filepath.Join(dir, "listings.csv"))
	if err != nil || csvInfo.Size() == 0 {
		t.Errorf("Expected a non-empty CSV, got %v / %v", csvInfo, err)
	}
	pqInfo, err := os.Stat(filepath.Join(dir, "listings.parquet"))
	if err != nil || pqInfo.Size() == 0 {
		t.Errorf("Expected a non-empty parquet file, got %v / %v", pqInfo, err)
	}
}

func TestAppendDepartmentCSV(t *testing.T) {
	dir := t.TempDir()
	header := []string{"id", "price"}

	if err := AppendDepartmentCSV(dir, "bienici", "2A", header, [][]string{{"B-1", "100"}}); err != nil {
		t.Fatalf("AppendDepartmentCSV() error = %v", err)
	}
	// second call appends without re-writing the header
	if err := AppendDepartmentCSV(dir, "bienici", "2A", header, [][]string{{"B-2", "200"}}); err != nil {
		t.Fatalf("AppendDepartmentCSV() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "bienici_dep_2A.csv"))
	if err != nil {
		t.Fatalf("Failed to read intermediate file: %v", err)
	}
	want := "id,price\nB-1,100\nB-2,200\n"
	if string(content) != want {
		t.Errorf("Unexpected file content:\n%s", content)
	}
}

func TestLoadDepartmentFiles(t *testing.T) {
	dir := t.TempDir()
	header := []string{"id", "price"}

	if err := AppendDepartmentCSV(dir, "bienici", "2A", header, [][]string{{"B-1", "100"}}); err != nil {
		t.Fatal(err)
	}
	if err := AppendDepartmentCSV(dir, "bienici", "75", header, [][]string{{"B-2", "200"}, {"B-3", ""}}); err != nil {
		t.Fatal(err)
	}
	// a foreign source's file in the same dir is ignored
	if err := AppendDepartmentCSV(dir, "other", "75", header, [][]string{{"X", "1"}}); err != nil {
		t.Fatal(err)
	}

	files, err := LoadDepartmentFiles(dir, "bienici")
	if err != nil {
		t.Fatalf("LoadDepartmentFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}

	// name order: 2A before 75
	if files[0].Department != "2A" || files[1].Department != "75" {
		t.Errorf("Unexpected departements %q, %q", files[0].Department, files[1].Department)
	}
	if len(files[1].Records) != 2 {
		t.Fatalf("Expected 2 records for 75, got %d", len(files[1].Records))
	}
	rec := files[1].Records[0]
	if rec["id"] != "B-2" || rec["price"] != "200" {
		t.Errorf("Unexpected record %v", rec)
	}
}

func TestJSONLinesRoundTrip(t *testing.T) {
	type item struct {
		ID   string `json:"id"`
		Dept string `json:"dept"`
	}
	path := filepath.Join(t.TempDir(), "dump.jsonl")

	in := []item{{ID: "1", Dept: "75"}, {ID: "2", Dept: "2B"}}
	if err := WriteJSONLinesFile(path, in); err != nil {
		t.Fatalf("WriteJSONLinesFile() error = %v", err)
	}

	out, err := ReadJSONLinesFile[item](path)
	if err != nil {
		t.Fatalf("ReadJSONLinesFile() error = %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("Round trip mismatch: %v", out)
	}
}

func TestReadJSONLinesFileMissing(t *testing.T) {
	out, err := ReadJSONLinesFile[struct{}](filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Expected empty slice, got %d items", len(out))
	}
}
