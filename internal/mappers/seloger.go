package mappers

import (
	"math"

	"immo-scraper/internal/domain"
	"immo-scraper/internal/sources/seloger"
)

// SeLoger maps extracted classifieds to canonical listings. Upstream encodes
// unknown price/surface as 0; those zeros are kept (a 0 surface still yields
// a null price_per_area, so the sentinel never leaks into derived values).
// The departement is the partition the page was fetched under.
func SeLoger(ads []seloger.Annonce, dept string) []domain.Listing {
	dept = domain.NormalizeDepartment(dept)
	out := make([]domain.Listing, 0, len(ads))

	for _, a := range ads {
		var cp *string
		if a.ZipCode != "" {
			cp = domain.ExtractPostalCode(a.ZipCode)
		}

		l := domain.Listing{
			ID:           a.ID,
			Price:        domain.IntPtr(int64(math.Round(a.Price))),
			SurfaceArea:  domain.FloatPtr(a.Surface),
			RoomCount:    domain.ToInt(a.NbRooms),
			BedroomCount: domain.ToInt(a.NbBedrooms),
			PropertyType: a.PropertyType,
			City:         a.City,
			PostalCode:   cp,
			Department:   dept,
			Source:       domain.SourceSeLoger,
		}
		if a.Description != "" {
			l.Description = domain.StringPtr(a.Description)
		}
		if a.Permalink != "" {
			l.URL = domain.StringPtr(a.Permalink)
		}
		l.Normalize()
		out = append(out, l)
	}
	return out
}
