package domain

type VenueType string

const (
	VenueWedding   VenueType = "Wedding"
	VenueCorporate VenueType = "Corporate"
	VenueParty     VenueType = "Party"
	VenueStudio    VenueType = "Studio"
	VenueOutdoor   VenueType = "Outdoor"
)

// VenueTypes is the fixed category enumeration, in display order.
var VenueTypes = []VenueType{
	VenueWedding,
	VenueCorporate,
	VenueParty,
	VenueStudio,
	VenueOutdoor,
}

func ParseVenueType(s string) (VenueType, bool) {
	for _, t := range VenueTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Venue is seeded once at startup and never mutated.
type Venue struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	PricePerHour float64   `json:"price_per_hour"`
	Capacity     int       `json:"capacity"`
	Rating       float64   `json:"rating"`
	ReviewsCount int       `json:"reviews_count"`
	ImageURL     string    `json:"image_url"`
	Type         VenueType `json:"type"`
	Amenities    []string  `json:"amenities"`
	Features     []string  `json:"features"`
}

// VenueSummary is the projection sent to the recommendation collaborator.
type VenueSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
}

func (v Venue) Summary() VenueSummary {
	return VenueSummary{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Features:    v.Features,
		Location:    v.Location,
		Price:       v.PricePerHour,
		Capacity:    v.Capacity,
	}
}

// Recommendation is the collaborator's answer to a free-text search.
// An empty VenueIDs list is a valid result, not an error.
type Recommendation struct {
	VenueIDs  []string `json:"venue_ids"`
	Reasoning string   `json:"reasoning"`
}
