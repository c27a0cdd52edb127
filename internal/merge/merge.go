// Package merge combines the per-source listing batches into one dataset.
// Batch order is the priority order: when two sources carry the same id,
// the earlier batch's row survives.
package merge

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"immo-scraper/internal/domain"
)

// Merge concatenates the batches and removes duplicates, keeping the first
// occurrence. Pass batches in priority order (see domain.Sources).
func Merge(batches ...[]domain.Listing) []domain.Listing {
	var all []domain.Listing
	for _, b := range batches {
		all = append(all, b...)
	}
	return Dedup(all)
}

// Dedup removes duplicate listings, first occurrence wins. Rows with a
// populated id are keyed by (source-independent) id; rows without one fall
// back to a fingerprint of every field, so two genuinely identical anonymous
// rows still collapse while near-duplicates stay apart.
func Dedup(listings []domain.Listing) []domain.Listing {
	seen := make(map[string]struct{}, len(listings))
	out := make([]domain.Listing, 0, len(listings))

	for _, l := range listings {
		key := l.ID
		if key == "" {
			key = fingerprint(l)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return out
}

func fingerprint(l domain.Listing) string {
	var b strings.Builder
	b.WriteString(l.ID)
	writeField(&b, l.Price)
	writeField(&b, l.SurfaceArea)
	writeField(&b, l.RoomCount)
	writeField(&b, l.BedroomCount)
	b.WriteString("\x1f" + l.PropertyType)
	b.WriteString("\x1f" + l.City)
	writeField(&b, l.PostalCode)
	b.WriteString("\x1f" + l.Department)
	writeField(&b, l.Latitude)
	writeField(&b, l.Longitude)
	writeField(&b, l.Description)
	writeField(&b, l.URL)
	b.WriteString("\x1f" + l.Source)

	sum := sha256.Sum256([]byte(b.String()))
	return "fp:" + hex.EncodeToString(sum[:])
}

func writeField[T any](b *strings.Builder, p *T) {
	b.WriteString("\x1f")
	if p != nil {
		fmt.Fprintf(b, "%v", *p)
	}
}
