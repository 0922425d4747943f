package services

import (
	"breezehire/internal/catalog"
	"breezehire/internal/domain"
	"breezehire/internal/repos"
)

// CatalogService loads the product list and runs the pure filter
// pipeline over it. Filtering stays in memory on purpose: the catalog
// is small and the engine's ordering contract (stable sort, original
// insertion order as tie-break) is easier to honor outside SQL.
type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// Browse returns the filtered, ordered product list plus the filter
// buttons derived from the full catalog.
func (s *CatalogService) Browse(q catalog.Query) ([]domain.Product, []catalog.Category, error) {
	all, err := s.Prods.All()
	if err != nil {
		return nil, nil, err
	}
	return catalog.Filter(all, q), catalog.CategoriesOf(all), nil
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// RentableProducts lists available products that carry a rental price
// mapping; this feeds the booking form's equipment selector.
func (s *CatalogService) RentableProducts() ([]domain.Product, error) {
	all, err := s.Prods.All()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.Availability == domain.Available && p.Rentable() {
			out = append(out, p)
		}
	}
	return out, nil
}
