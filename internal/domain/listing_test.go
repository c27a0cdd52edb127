package domain

import "testing"

func TestComputePricePerArea(t *testing.T) {
	got := ComputePricePerArea(IntPtr(200000), FloatPtr(60))
	if got == nil || *got != 3333.33 {
		t.Errorf("Expected 3333.33, got %v", got)
	}

	// Missing operands
	if got := ComputePricePerArea(nil, FloatPtr(60)); got != nil {
		t.Errorf("Expected nil for nil price, got %v", *got)
	}
	if got := ComputePricePerArea(IntPtr(200000), nil); got != nil {
		t.Errorf("Expected nil for nil surface, got %v", *got)
	}

	// Zero surface (SeLoger sentinel) must not divide
	if got := ComputePricePerArea(IntPtr(200000), FloatPtr(0)); got != nil {
		t.Errorf("Expected nil for zero surface, got %v", *got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	l := Listing{
		ID:          "x1",
		Price:       IntPtr(150000),
		SurfaceArea: FloatPtr(47.5),
		// upstream value must be discarded
		PricePerArea: FloatPtr(999),
		PostalCode:   StringPtr("75001 Paris"),
	}

	l.Normalize()
	if l.PricePerArea == nil || *l.PricePerArea != 3157.89 {
		t.Errorf("Expected recomputed 3157.89, got %v", l.PricePerArea)
	}
	if l.PostalCode == nil || *l.PostalCode != "75001" {
		t.Errorf("Expected postal code 75001, got %v", l.PostalCode)
	}

	first := *l.PricePerArea
	l.Normalize()
	if *l.PricePerArea != first {
		t.Errorf("Expected normalization to be idempotent, got %v then %v", first, *l.PricePerArea)
	}
}

func TestToIntCoercion(t *testing.T) {
	cases := []struct {
		in   any
		want *int64
	}{
		{"42", IntPtr(42)},
		{"3.7", IntPtr(4)}, // round, not truncate
		{"2.4", IntPtr(2)},
		{42.9, IntPtr(43)},
		{"", nil},
		{"abc", nil},
		{nil, nil},
	}
	for _, c := range cases {
		got := ToInt(c.in)
		if (got == nil) != (c.want == nil) {
			t.Errorf("ToInt(%v): expected %v, got %v", c.in, c.want, got)
			continue
		}
		if got != nil && *got != *c.want {
			t.Errorf("ToInt(%v): expected %d, got %d", c.in, *c.want, *got)
		}
	}
}

func TestToFloatCoercion(t *testing.T) {
	if got := ToFloat("47,5"); got == nil || *got != 47.5 {
		t.Errorf("Expected comma decimal to parse as 47.5, got %v", got)
	}
	if got := ToFloat("n/a"); got != nil {
		t.Errorf("Expected nil for unparseable value, got %v", *got)
	}
	if got := ToFloat(12); got == nil || *got != 12 {
		t.Errorf("Expected 12, got %v", got)
	}
}
