package clients

import "strings"

// DefaultCuisine is the label used when no category tag matches.
const DefaultCuisine = "Restaurant"

// cuisinePriority maps Places category tags to cuisine labels, highest
// priority first. The first priority entry present among a result's tags
// wins, regardless of the order the provider lists the tags in.
var cuisinePriority = []struct {
	tag   string
	label string
}{
	{"restaurant", "Restaurant"},
	{"food", "Food"},
	{"cafe", "Cafe"},
	{"bakery", "Bakery"},
	{"bar", "Bar"},
	{"meal_takeaway", "Takeaway"},
	{"meal_delivery", "Delivery"},
}

// CuisineFromTypes maps a Places category tag list to a single cuisine
// label. Empty or unrecognized input yields DefaultCuisine.
func CuisineFromTypes(tags []string) string {
	if len(tags) == 0 {
		return DefaultCuisine
	}

	present := make(map[string]bool, len(tags))
	for _, tag := range tags {
		present[strings.ToLower(tag)] = true
	}

	for _, entry := range cuisinePriority {
		if present[entry.tag] {
			return entry.label
		}
	}

	return DefaultCuisine
}
