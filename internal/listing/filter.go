package listing

import (
	"strings"

	"luminavenues/internal/domain"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Merge produces the ordered venue list for display.
//
// With no recommendation: the catalog is narrowed by category (unless "All")
// and then by a case-insensitive substring match of query against name,
// location and description, order preserved.
//
// With a recommendation present the text filter and category are ignored and
// the entire catalog is partitioned: recommended venues first, in the
// recommendation's order, then the remainder in catalog order. Every catalog
// venue appears exactly once.
func Merge(catalog []domain.Venue, category, query string, rec *domain.Recommendation) []domain.Venue {
	if rec != nil {
		return mergeRecommended(catalog, rec.VenueIDs)
	}

	out := make([]domain.Venue, 0, len(catalog))
	lower := strings.ToLower(query)
	for _, v := range catalog {
		if category != "" && category != CategoryAll && string(v.Type) != category {
			continue
		}
		if lower != "" && !matchesQuery(v, lower) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesQuery(v domain.Venue, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(v.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(v.Location), lowerQuery) ||
		strings.Contains(strings.ToLower(v.Description), lowerQuery)
}

func mergeRecommended(catalog []domain.Venue, ids []string) []domain.Venue {
	byID := make(map[string]domain.Venue, len(catalog))
	for _, v := range catalog {
		byID[v.ID] = v
	}

	out := make([]domain.Venue, 0, len(catalog))
	picked := make(map[string]bool, len(ids))
	for _, id := range ids {
		v, ok := byID[id]
		if !ok || picked[id] {
			continue
		}
		picked[id] = true
		out = append(out, v)
	}
	for _, v := range catalog {
		if !picked[v.ID] {
			out = append(out, v)
		}
	}
	return out
}
