package catalog

import "luminavenues/internal/domain"

// seedVenues returns the demo catalog. IDs are stable: bookings keep a
// denormalized copy of the name but reference venues by these IDs.
func seedVenues() []domain.Venue {
	return []domain.Venue{
		{
			ID:           "v1",
			Name:         "The Grand Ballroom",
			Description:  "A timeless ballroom with crystal chandeliers, marble floors and a sweeping staircase. Built for weddings that need a little drama.",
			Location:     "Napa Valley, CA",
			PricePerHour: 450,
			Capacity:     300,
			Rating:       4.9,
			ReviewsCount: 182,
			ImageURL:     "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueWedding,
			Amenities:    []string{"Valet Parking", "Full Bar", "Catering Kitchen", "Bridal Suite"},
			Features:     []string{"elegant", "classic", "chandeliers", "luxury", "romantic"},
		},
		{
			ID:           "v2",
			Name:         "Skyline Terrace",
			Description:  "Rooftop terrace on the 40th floor with panoramic city views. Glass walls, open air and a sunset nobody forgets.",
			Location:     "San Francisco, CA",
			PricePerHour: 350,
			Capacity:     150,
			Rating:       4.8,
			ReviewsCount: 143,
			ImageURL:     "https://images.unsplash.com/photo-1519671482749-fd09be7ccebf?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueParty,
			Amenities:    []string{"Full Bar", "DJ Booth", "Heat Lamps", "Elevator Access"},
			Features:     []string{"rooftop", "views", "sunset", "modern", "cocktails"},
		},
		{
			ID:           "v3",
			Name:         "The Iron Works",
			Description:  "Converted 1920s foundry with exposed brick, steel beams and 30-foot ceilings. Raw industrial character with modern utilities.",
			Location:     "Oakland, CA",
			PricePerHour: 200,
			Capacity:     120,
			Rating:       4.7,
			ReviewsCount: 98,
			ImageURL:     "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueParty,
			Amenities:    []string{"Sound System", "Freight Elevator", "Loading Dock", "WiFi"},
			Features:     []string{"industrial", "brick", "loft", "urban", "edgy"},
		},
		{
			ID:           "v4",
			Name:         "Lumen Studio",
			Description:  "Daylight photo and video studio with white cyclorama wall, blackout curtains and a full lighting grid.",
			Location:     "Los Angeles, CA",
			PricePerHour: 120,
			Capacity:     40,
			Rating:       4.9,
			ReviewsCount: 211,
			ImageURL:     "https://images.unsplash.com/photo-1520333789090-1afc82db536a?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueStudio,
			Amenities:    []string{"Lighting Grid", "Cyclorama", "Makeup Room", "WiFi"},
			Features:     []string{"daylight", "photography", "minimal", "white", "creative"},
		},
		{
			ID:           "v5",
			Name:         "Cedar Grove Estate",
			Description:  "Ten acres of gardens, a cedar pergola and a private lake. Ceremony lawn seats 250 under old oaks.",
			Location:     "Sonoma, CA",
			PricePerHour: 380,
			Capacity:     250,
			Rating:       4.8,
			ReviewsCount: 167,
			ImageURL:     "https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueOutdoor,
			Amenities:    []string{"Garden", "Tent Available", "Parking", "Catering Kitchen"},
			Features:     []string{"garden", "lake", "nature", "rustic", "romantic"},
		},
		{
			ID:           "v6",
			Name:         "The Summit Forum",
			Description:  "Tiered auditorium and breakout rooms wired for hybrid events. Gigabit internet, 4K projection and on-site AV crew.",
			Location:     "Palo Alto, CA",
			PricePerHour: 275,
			Capacity:     200,
			Rating:       4.6,
			ReviewsCount: 89,
			ImageURL:     "https://images.unsplash.com/photo-1431540015161-0bf868a2d407?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueCorporate,
			Amenities:    []string{"4K Projection", "Video Conferencing", "Catering", "Parking"},
			Features:     []string{"conference", "tech", "presentations", "professional", "hybrid"},
		},
		{
			ID:           "v7",
			Name:         "Brickline Warehouse",
			Description:  "Bare-bones warehouse space with polished concrete floors and roll-up doors. A blank canvas for big productions.",
			Location:     "San Jose, CA",
			PricePerHour: 150,
			Capacity:     400,
			Rating:       4.4,
			ReviewsCount: 56,
			ImageURL:     "https://images.unsplash.com/photo-1497366811353-6870744d04b2?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueParty,
			Amenities:    []string{"Loading Dock", "Power Distro", "Parking", "Security"},
			Features:     []string{"industrial", "warehouse", "blank canvas", "huge", "raw"},
		},
		{
			ID:           "v8",
			Name:         "Vineyard Veranda",
			Description:  "Covered veranda overlooking working vineyards. Long farm tables, string lights and an estate wine list.",
			Location:     "Healdsburg, CA",
			PricePerHour: 320,
			Capacity:     90,
			Rating:       4.9,
			ReviewsCount: 134,
			ImageURL:     "https://images.unsplash.com/photo-1510076857177-7470076d4098?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueWedding,
			Amenities:    []string{"Wine Service", "String Lights", "Farm Tables", "Parking"},
			Features:     []string{"vineyard", "wine", "intimate", "rustic", "sunset"},
		},
		{
			ID:           "v9",
			Name:         "Harbor House",
			Description:  "Waterfront boardroom and lounge with floor-to-ceiling windows over the marina. Quiet, private and five minutes from downtown.",
			Location:     "Sausalito, CA",
			PricePerHour: 180,
			Capacity:     60,
			Rating:       4.5,
			ReviewsCount: 72,
			ImageURL:     "https://images.unsplash.com/photo-1507089947368-19c1da9775ae?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueCorporate,
			Amenities:    []string{"Video Conferencing", "WiFi", "Coffee Bar", "Waterfront Deck"},
			Features:     []string{"waterfront", "quiet", "executive", "views", "private"},
		},
		{
			ID:           "v10",
			Name:         "Redwood Amphitheater",
			Description:  "Open-air amphitheater ringed by old-growth redwoods. Built-in stage, natural acoustics and trailhead access.",
			Location:     "Mill Valley, CA",
			PricePerHour: 95,
			Capacity:     180,
			Rating:       4.7,
			ReviewsCount: 61,
			ImageURL:     "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=1200&q=80",
			Type:         domain.VenueOutdoor,
			Amenities:    []string{"Stage", "Natural Acoustics", "Restrooms", "Parking"},
			Features:     []string{"redwoods", "amphitheater", "nature", "outdoor", "affordable"},
		},
	}
}
