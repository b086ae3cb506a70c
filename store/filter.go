package store

import "github.com/cedarlux/cedar_lux_site/backend/models"

// FilterAll matches every record on either filter axis. The empty string is
// treated the same so an omitted query parameter means no filtering.
const FilterAll = "All"

// Visible projects the subset of the catalog matching both filters,
// preserving catalog order. A neighborhood label that matches no configured
// name is tolerated; it just never matches a concrete filter.
func Visible(props []models.Property, neighborhood, status string) []models.Property {
	out := make([]models.Property, 0, len(props))
	for _, p := range props {
		if !matches(neighborhood, p.Neighborhood) {
			continue
		}
		if !matches(status, string(p.Status)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}
