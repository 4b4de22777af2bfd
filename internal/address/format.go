package address

import "strings"

// Format joins the non-empty address components with ", ". Optional fields
// never produce doubled separators.
func Format(a Address) string {
	parts := []string{
		a.AddressLine1,
		a.AddressLine2,
		a.City,
		a.District,
		a.PostalCode,
		a.Country,
	}

	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, ", ")
}
