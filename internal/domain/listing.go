package domain

import "math"

// Source tags identifying where a listing came from.
const (
	SourceNotaires = "notaires"
	SourceBienICI  = "bienici"
	SourceSeLoger  = "seloger"
)

// Sources is the fixed merge priority order. When the same id shows up in
// several sources, the earliest source in this list wins.
var Sources = []string{SourceNotaires, SourceBienICI, SourceSeLoger}

// Listing is the canonical representation of a listing inside this service.
// All sources map into this model, and all exports map from this model.
// Nil pointer fields mean "unknown"; SeLoger additionally uses 0 for unknown
// price/surface (an upstream quirk we keep as-is, see the mapper).
type Listing struct {
	ID           string
	Price        *int64   // currency units
	SurfaceArea  *float64 // square meters
	PricePerArea *float64 // always recomputed, never read from upstream
	RoomCount    *int64
	BedroomCount *int64
	PropertyType string // source vocabulary, not unified
	City         string
	PostalCode   *string // 5-digit when extractable
	Department   string  // "01".."95", "2A"/"2B", or overseas "971".."976"
	Latitude     *float64
	Longitude    *float64
	Description  *string
	URL          *string
	Source       string
}

// ComputePricePerArea derives price per square meter, rounded to 2 decimals.
// Returns nil when either operand is missing or surface is zero, so the
// SeLoger zero sentinel can never fabricate a derived value.
func ComputePricePerArea(price *int64, surface *float64) *float64 {
	if price == nil || surface == nil || *surface == 0 {
		return nil
	}
	v := math.Round(float64(*price)/(*surface)*100) / 100
	return &v
}

// Normalize recomputes derived fields in place. Applying it twice is a no-op.
func (l *Listing) Normalize() {
	l.PricePerArea = ComputePricePerArea(l.Price, l.SurfaceArea)
	if l.PostalCode != nil {
		l.PostalCode = ExtractPostalCode(*l.PostalCode)
	}
}
