package bienici

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

type captureTransport struct {
	body    string
	lastReq *http.Request
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.lastReq = req
	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBufferString(c.body)),
		Header:     http.Header{},
	}, nil
}

func TestFetchPageEncodesFilterBlob(t *testing.T) {
	tr := &captureTransport{body: `{"realEstateAds":[{"id":"abc-1","price":150000}]}`}
	c := New("https://www.test.example", "", "tok", "sess", 24)
	c.HTTP = &http.Client{Transport: tr}

	ads, err := c.FetchPage(context.Background(), "2B", 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ads) != 1 || ads[0]["id"] != "abc-1" {
		t.Fatalf("Unexpected ads %v", ads)
	}

	q := tr.lastReq.URL.Query()
	if q.Get("access_token") != "tok:sess" {
		t.Errorf("Expected token pair tok:sess, got %q", q.Get("access_token"))
	}
	if q.Get("id") != "sess" {
		t.Errorf("Expected session id param, got %q", q.Get("id"))
	}

	var filter searchFilter
	if err := json.Unmarshal([]byte(q.Get("filters")), &filter); err != nil {
		t.Fatalf("filters param is not valid JSON: %v", err)
	}
	if filter.Page != 3 || filter.From != 48 || filter.Size != 24 {
		t.Errorf("Unexpected paging in filter %+v", filter)
	}
	if len(filter.ZoneIDs) != 1 || filter.ZoneIDs[0] != "dep-2B" {
		t.Errorf("Expected zoneIds [dep-2B], got %v", filter.ZoneIDs)
	}
}

func TestRowFlattensNestedPosition(t *testing.T) {
	ad := map[string]any{
		"id":               "x42",
		"price":            float64(230000),
		"surfaceArea":      54.3,
		"roomsQuantity":    float64(3),
		"bedroomsQuantity": float64(2),
		"propertyType":     "flat",
		"city":             "Ajaccio",
		"postalCode":       "20000",
		"blurInfo": map[string]any{
			"position": map[string]any{"lat": 41.9192, "lon": 8.7386},
		},
	}

	row := Row(ad)
	if len(row) != len(Header) {
		t.Fatalf("Expected %d columns, got %d", len(Header), len(row))
	}
	if row[0] != "x42" || row[1] != "230000" || row[2] != "54.3" {
		t.Errorf("Unexpected row head %v", row[:3])
	}
	if row[8] != "41.9192" || row[9] != "8.7386" {
		t.Errorf("Expected flattened position, got lat=%q lon=%q", row[8], row[9])
	}
	// absent fields are empty cells
	if row[10] != "" || row[11] != "" {
		t.Errorf("Expected empty description/url, got %v", row[10:])
	}
}

func TestRowLivingAreaAlias(t *testing.T) {
	row := Row(map[string]any{"id": "a", "livingArea": float64(70)})
	if row[2] != "70" {
		t.Errorf("Expected livingArea to fill the surface column, got %q", row[2])
	}
}
