package mappers

import (
	"immo-scraper/internal/domain"
)

// bieniciAliases reconciles the column names seen across Bien'ici payload
// releases to canonical field names. Two different upstream names can mean
// the same canonical column (surfaceArea/livingArea/surface).
var bieniciAliases = map[string]string{
	"id":               "id",
	"reference":        "id",
	"price":            "price",
	"surfaceArea":      "surface_area",
	"livingArea":       "surface_area",
	"surface":          "surface_area",
	"roomsQuantity":    "room_count",
	"rooms":            "room_count",
	"bedroomsQuantity": "bedroom_count",
	"bedrooms":         "bedroom_count",
	"propertyType":     "property_type",
	"city":             "city",
	"zipCode":          "postal_code",
	"postalCode":       "postal_code",
	"latitude":         "latitude",
	"longitude":        "longitude",
	"description":      "description",
	"url":              "url",
	"permalink":        "url",
}

// BienICI maps raw aggregator records (loose column name -> value maps, as
// read from a per-departement intermediate file) to canonical listings.
// The departement is the partition the file was fetched under; postal codes
// can span boundaries on this source, so the partition wins.
func BienICI(records []map[string]string, dept string) []domain.Listing {
	dept = domain.NormalizeDepartment(dept)
	out := make([]domain.Listing, 0, len(records))

	for _, rec := range records {
		// canonicalize keys first; missing columns simply stay absent (null)
		canon := make(map[string]string, len(rec))
		for k, v := range rec {
			name, ok := bieniciAliases[k]
			if !ok || v == "" {
				continue
			}
			if _, exists := canon[name]; exists {
				continue // first alias wins
			}
			canon[name] = v
		}

		var cp *string
		if v, ok := canon["postal_code"]; ok {
			cp = domain.ExtractPostalCode(v)
		}

		l := domain.Listing{
			ID:           canon["id"],
			Price:        domain.ToInt(canon["price"]),
			SurfaceArea:  domain.ToFloat(canon["surface_area"]),
			RoomCount:    domain.ToInt(canon["room_count"]),
			BedroomCount: domain.ToInt(canon["bedroom_count"]),
			PropertyType: canon["property_type"],
			City:         canon["city"],
			PostalCode:   cp,
			Department:   dept,
			Latitude:     domain.ToFloat(canon["latitude"]),
			Longitude:    domain.ToFloat(canon["longitude"]),
			Source:       domain.SourceBienICI,
		}
		if v := canon["description"]; v != "" {
			l.Description = domain.StringPtr(v)
		}
		if v := canon["url"]; v != "" {
			l.URL = domain.StringPtr(v)
		}
		l.Normalize()
		out = append(out, l)
	}
	return out
}
