package services

import "strings"

// FallbackNeighborhood is the label for in-region addresses that match no
// known neighborhood keyword.
const FallbackNeighborhood = "Other San Diego Areas"

// regionLabel is the short fallback used in suggestion subtitles.
const regionLabel = "San Diego"

// neighborhoodTable maps address keywords to neighborhood labels, evaluated
// in order with first match winning. Keep "mission beach" ahead of
// "mission valley" and similar two-word keywords intact; the keyword order
// is the classification contract.
var neighborhoodTable = []struct {
	keyword string
	label   string
}{
	{"downtown", "Downtown San Diego"},
	{"la jolla", "La Jolla"},
	{"gaslamp", "Gaslamp Quarter"},
	{"mission beach", "Mission Beach"},
	{"pacific beach", "Pacific Beach"},
	{"hillcrest", "Hillcrest"},
	{"north park", "North Park"},
	{"south park", "South Park"},
	{"mission valley", "Mission Valley"},
	{"little italy", "Little Italy"},
	{"coronado", "Coronado"},
	{"del mar", "Del Mar"},
	{"encinitas", "Encinitas"},
	{"carlsbad", "Carlsbad"},
}

// ClassifyNeighborhood maps a free-text address to a neighborhood label,
// falling back to FallbackNeighborhood. Never fails; empty input maps
// straight to the fallback.
func ClassifyNeighborhood(address string) string {
	if label, ok := matchNeighborhood(address); ok {
		return label
	}
	return FallbackNeighborhood
}

// NeighborhoodFromAddress is the display variant used in autocomplete
// subtitles; it falls back to the plain region name.
func NeighborhoodFromAddress(address string) string {
	if label, ok := matchNeighborhood(address); ok {
		return label
	}
	return regionLabel
}

func matchNeighborhood(address string) (string, bool) {
	lower := strings.ToLower(address)
	for _, entry := range neighborhoodTable {
		if strings.Contains(lower, entry.keyword) {
			return entry.label, true
		}
	}
	return "", false
}
