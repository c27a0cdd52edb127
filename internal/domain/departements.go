package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Overseas department codes (DOM). Kept verbatim, never zero-padded.
var overseas = []string{"971", "972", "973", "974", "976"}

// Departments returns every partition we scrape: metropolitan 01..95 with
// Corsica's 2A/2B replacing the historical 20, then the DOM codes.
func Departments() []string {
	out := make([]string, 0, 101)
	for i := 1; i <= 95; i++ {
		if i == 20 {
			out = append(out, "2A", "2B")
			continue
		}
		out = append(out, fmt.Sprintf("%02d", i))
	}
	out = append(out, overseas...)
	return out
}

// NormalizeDepartment brings a department code into canonical form:
// numeric metropolitan codes are zero-padded to 2 chars ("1" -> "01"),
// "2A"/"2B" and the 3-digit overseas codes pass through verbatim.
func NormalizeDepartment(code string) string {
	if code == "" {
		return ""
	}
	if n, err := strconv.Atoi(code); err == nil && n >= 1 && n <= 95 {
		return fmt.Sprintf("%02d", n)
	}
	return code
}

var postalRe = regexp.MustCompile(`\d{5}`)

// ExtractPostalCode pulls the first 5-digit run out of a raw postal value.
// Returns nil when none is present.
func ExtractPostalCode(raw string) *string {
	cp := postalRe.FindString(raw)
	if cp == "" {
		return nil
	}
	return &cp
}

// DepartmentFromPostal derives the department from a postal code's first two
// digits. Overseas postal codes (97x..) keep three digits. Returns "" when the
// postal code is unusable.
func DepartmentFromPostal(cp *string) string {
	if cp == nil || len(*cp) < 5 {
		return ""
	}
	s := *cp
	if s[:2] == "97" {
		return s[:3]
	}
	return NormalizeDepartment(s[:2])
}
