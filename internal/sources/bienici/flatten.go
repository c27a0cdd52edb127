package bienici

import (
	"fmt"
	"strconv"
)

// Header is the column set of the per-departement intermediate CSVs. Column
// names follow the upstream payload on purpose: the rename table in the
// mapper is the single place where upstream naming drift is reconciled.
var Header = []string{
	"id", "price", "surfaceArea", "roomsQuantity", "bedroomsQuantity",
	"propertyType", "city", "postalCode", "latitude", "longitude",
	"description", "url",
}

// Row flattens one raw ad into the intermediate CSV layout. Missing fields
// become empty cells, never an error; the payload shape is not ours.
func Row(ad map[string]any) []string {
	surface := str(ad["surfaceArea"])
	if surface == "" {
		// older payloads name it livingArea
		surface = str(ad["livingArea"])
	}

	return []string{
		str(ad["id"]),
		str(ad["price"]),
		surface,
		str(ad["roomsQuantity"]),
		str(ad["bedroomsQuantity"]),
		str(ad["propertyType"]),
		str(ad["city"]),
		str(ad["postalCode"]),
		str(dig(ad, "blurInfo", "position", "lat")),
		str(dig(ad, "blurInfo", "position", "lon")),
		str(ad["description"]),
		str(ad["url"]),
	}
}

// dig walks nested maps, returning nil as soon as a key is missing.
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

func str(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
