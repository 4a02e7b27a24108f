package catalog

import (
	"errors"

	"luminavenues/internal/domain"
)

var ErrNotFound = errors.New("venue not found")

// Catalog is the static set of all known venues. It is built once at
// process start and is read-only afterwards, so it needs no locking.
type Catalog struct {
	venues []domain.Venue
	byID   map[string]int
}

func New(venues []domain.Venue) *Catalog {
	byID := make(map[string]int, len(venues))
	for i, v := range venues {
		byID[v.ID] = i
	}
	return &Catalog{venues: venues, byID: byID}
}

// NewSeeded builds the catalog from the built-in demo data.
func NewSeeded() *Catalog {
	return New(seedVenues())
}

// All returns the venues in catalog order. Callers must not mutate the
// returned slice; a copy is handed out to keep the catalog immutable.
func (c *Catalog) All() []domain.Venue {
	out := make([]domain.Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

func (c *Catalog) GetByID(id string) (*domain.Venue, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	v := c.venues[i]
	return &v, nil
}

func (c *Catalog) Len() int { return len(c.venues) }

// Summaries returns the collaborator projection for every venue.
func (c *Catalog) Summaries() []domain.VenueSummary {
	out := make([]domain.VenueSummary, 0, len(c.venues))
	for _, v := range c.venues {
		out = append(out, v.Summary())
	}
	return out
}
