package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luminavenues/internal/domain"
)

func testCatalog() []domain.Venue {
	return []domain.Venue{
		{ID: "v1", Name: "The Grand Ballroom", Location: "Napa Valley, CA", Description: "Crystal chandeliers and marble floors", Type: domain.VenueWedding},
		{ID: "v2", Name: "Skyline Terrace", Location: "San Francisco, CA", Description: "Rooftop with city views", Type: domain.VenueParty},
		{ID: "v3", Name: "The Iron Works", Location: "Oakland, CA", Description: "Industrial foundry loft", Type: domain.VenueParty},
		{ID: "v4", Name: "Lumen Studio", Location: "Los Angeles, CA", Description: "Daylight photo studio", Type: domain.VenueStudio},
		{ID: "v5", Name: "Cedar Grove Estate", Location: "Sonoma, CA", Description: "Gardens and a private lake", Type: domain.VenueOutdoor},
	}
}

func ids(venues []domain.Venue) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.ID)
	}
	return out
}

func TestMerge_NoFilters_ReturnsCatalogOrder(t *testing.T) {
	got := Merge(testCatalog(), CategoryAll, "", nil)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5"}, ids(got))
}

func TestMerge_CategoryFilter_ExactSubsetOrderPreserved(t *testing.T) {
	catalog := testCatalog()

	for _, vt := range domain.VenueTypes {
		got := Merge(catalog, string(vt), "", nil)
		want := make([]string, 0)
		for _, v := range catalog {
			if v.Type == vt {
				want = append(want, v.ID)
			}
		}
		assert.Equal(t, want, ids(got), "category %s", vt)
	}
}

func TestMerge_TextQuery_CaseInsensitiveSubstring(t *testing.T) {
	catalog := testCatalog()

	// matches name
	got := Merge(catalog, CategoryAll, "iron", nil)
	assert.Equal(t, []string{"v3"}, ids(got))

	// matches location, mixed case
	got = Merge(catalog, CategoryAll, "SONOMA", nil)
	assert.Equal(t, []string{"v5"}, ids(got))

	// matches description
	got = Merge(catalog, CategoryAll, "rooftop", nil)
	assert.Equal(t, []string{"v2"}, ids(got))

	// no match
	got = Merge(catalog, CategoryAll, "zanzibar", nil)
	assert.Empty(t, got)
}

func TestMerge_CategoryAndQueryCombine(t *testing.T) {
	got := Merge(testCatalog(), string(domain.VenueParty), "oakland", nil)
	assert.Equal(t, []string{"v3"}, ids(got))
}

func TestMerge_Recommendation_PartitionsWholeCatalog(t *testing.T) {
	catalog := testCatalog()
	rec := &domain.Recommendation{VenueIDs: []string{"v3", "v5"}, Reasoning: "industrial and outdoorsy"}

	got := Merge(catalog, string(domain.VenueWedding), "ignored text", rec)

	// recommended first in rec order, remainder in catalog order, no dup
	assert.Equal(t, []string{"v3", "v5", "v1", "v2", "v4"}, ids(got))
	assert.Len(t, got, len(catalog))
}

func TestMerge_Recommendation_UnknownAndDuplicateIDsIgnored(t *testing.T) {
	catalog := testCatalog()
	rec := &domain.Recommendation{VenueIDs: []string{"v2", "nope", "v2", "v4"}}

	got := Merge(catalog, CategoryAll, "", rec)
	assert.Equal(t, []string{"v2", "v4", "v1", "v3", "v5"}, ids(got))
}

func TestMerge_EmptyRecommendation_FallsBackToFullCatalog(t *testing.T) {
	catalog := testCatalog()
	rec := &domain.Recommendation{VenueIDs: []string{}, Reasoning: "nothing matched"}

	got := Merge(catalog, CategoryAll, "", rec)
	assert.Equal(t, ids(catalog), ids(got))
}
