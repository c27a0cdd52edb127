package seloger

import (
	"fmt"
	"strconv"
)

// Annonce is the flat record extracted from SeLoger's nested classified
// payload. Upstream uses 0, not null, for unknown price and surface; the
// zeros are kept verbatim here and downstream, so consumers must treat a
// 0 price/surface as suspect rather than missing.
type Annonce struct {
	ID               string  `json:"id"`
	CreationDate     string  `json:"creationDate"`
	City             string  `json:"city"`
	District         string  `json:"district"`
	ZipCode          string  `json:"zipCode"`
	DistributionType string  `json:"distributionType"`
	PropertyType     string  `json:"propertyType"`
	Price            float64 `json:"price"`   // 0 = unknown upstream
	Surface          float64 `json:"surface"` // 0 = unknown upstream
	NbRooms          string  `json:"nbroom"`
	NbBedrooms       string  `json:"nbbedroom"`
	Description      string  `json:"description"`
	Permalink        string  `json:"permalink"`
}

// Record ties an annonce to the departement it was fetched under, for the
// intermediate NDJSON file consumed by the merge job.
type Record struct {
	Departement string  `json:"departement"`
	Annonce     Annonce `json:"annonce"`
}

// Extract flattens one classified via safe nested lookups. A missing path
// yields the type's default (empty string / 0), never an error.
func Extract(m map[string]any) Annonce {
	return Annonce{
		ID:               digString(m, "id"),
		CreationDate:     digString(m, "metadata", "creationDate"),
		City:             digString(m, "location", "address", "city"),
		District:         digString(m, "location", "address", "district"),
		ZipCode:          digString(m, "location", "address", "zipCode"),
		DistributionType: digString(m, "rawData", "distributionType"),
		PropertyType:     digString(m, "rawData", "propertyType"),
		Price:            digFloat(m, "rawData", "price"),
		Surface:          digFloat(m, "rawData", "surface", "main"),
		NbRooms:          digString(m, "rawData", "nbroom"),
		NbBedrooms:       digString(m, "rawData", "nbbedroom"),
		Description:      digString(m, "mainDescription", "description"),
		Permalink:        digString(m, "permalink"),
	}
}

// dig walks nested maps, returning nil as soon as a key is missing or an
// intermediate value is not an object.
func dig(m map[string]any, keys ...string) any {
	var cur any = m
	for _, k := range keys {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = mm[k]
	}
	return cur
}

func digString(m map[string]any, keys ...string) string {
	switch v := dig(m, keys...).(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func digFloat(m map[string]any, keys ...string) float64 {
	switch v := dig(m, keys...).(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
