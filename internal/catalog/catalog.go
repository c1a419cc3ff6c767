package catalog

import (
	"strings"

	"backend/internal/domain"
	"backend/internal/domain/models"
)

// Catalog is the trusted, read-only list of bookable tour packages. It is
// built once at startup and never mutated, so concurrent reads are safe.
type Catalog struct {
	items []models.TourPackage
	byID  map[string]models.TourPackage
}

func New(items []models.TourPackage) *Catalog {
	byID := make(map[string]models.TourPackage, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}
	return &Catalog{items: items, byID: byID}
}

// All returns every package in catalog order.
func (c *Catalog) All() []models.TourPackage {
	out := make([]models.TourPackage, len(c.items))
	copy(out, c.items)
	return out
}

// ByID resolves a package id. A miss is the order endpoint's 404.
func (c *Catalog) ByID(id string) (models.TourPackage, error) {
	p, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return models.TourPackage{}, domain.NotFoundError{Resource: "package"}
	}
	return p, nil
}

// Filter narrows by state and category (exact, case-insensitive) and a free
// text query matched against title and description. Empty args match all.
func (c *Catalog) Filter(state, category, query string) []models.TourPackage {
	state = strings.ToLower(strings.TrimSpace(state))
	category = strings.ToLower(strings.TrimSpace(category))
	query = strings.ToLower(strings.TrimSpace(query))

	out := []models.TourPackage{}
	for _, p := range c.items {
		if state != "" && strings.ToLower(p.State) != state {
			continue
		}
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
