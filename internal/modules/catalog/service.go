package catalog

import (
	"errors"

	"luminavenues/internal/catalog"
	"luminavenues/internal/domain"
	"luminavenues/internal/listing"
)

var ErrInvalidCategory = errors.New("invalid category")

type Service struct {
	catalog *catalog.Catalog
}

func NewService(c *catalog.Catalog) *Service {
	return &Service{catalog: c}
}

// List applies the category and plain-text filters. Recommendation-driven
// ordering lives in browse sessions; a stateless listing never has one.
func (s *Service) List(category, query string) ([]domain.Venue, error) {
	if category != "" && category != listing.CategoryAll {
		if _, ok := domain.ParseVenueType(category); !ok {
			return nil, ErrInvalidCategory
		}
	}
	return listing.Merge(s.catalog.All(), category, query, nil), nil
}

func (s *Service) Get(id string) (*domain.Venue, error) {
	return s.catalog.GetByID(id)
}

func (s *Service) Categories() []domain.VenueType {
	return domain.VenueTypes
}
