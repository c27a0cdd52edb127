// Package mappers converts each source's raw record shape into the canonical
// domain.Listing. Every mapper recomputes price_per_area itself and keeps
// records even when both price and surface are missing; filtering for model
// usability happens downstream, not here.
package mappers

import (
	"immo-scraper/internal/domain"
)

// Column positions of the raw notaires CSV (see notaires.Header).
const (
	notID = iota + 1
	notPrix
	notSurface
	notPrixM2
	notNbPieces
	notNbChambres
	notTypeBien
	notCP
	notCommune
)

// Notaires maps raw notaires rows (fixed positional layout) to canonical
// listings. The departement column is ignored: for this source the postal
// code is authoritative and the departement is re-derived from its first
// digits.
func Notaires(rows [][]string) []domain.Listing {
	out := make([]domain.Listing, 0, len(rows))

	for _, row := range rows {
		if len(row) <= notCommune {
			continue
		}
		if row[0] == "departement" {
			// header row of a re-read intermediate file
			continue
		}

		var cp *string
		if c := domain.ExtractPostalCode(row[notCP]); c != nil {
			cp = c
		}

		l := domain.Listing{
			ID:           row[notID],
			Price:        domain.ToInt(row[notPrix]),
			SurfaceArea:  domain.ToFloat(row[notSurface]),
			RoomCount:    domain.ToInt(row[notNbPieces]),
			BedroomCount: domain.ToInt(row[notNbChambres]),
			PropertyType: row[notTypeBien],
			City:         row[notCommune],
			PostalCode:   cp,
			Department:   domain.DepartmentFromPostal(cp),
			Source:       domain.SourceNotaires,
		}
		if len(row) > 13 && row[13] != "" {
			l.URL = domain.StringPtr(row[13])
		}
		l.Normalize()
		out = append(out, l)
	}
	return out
}
