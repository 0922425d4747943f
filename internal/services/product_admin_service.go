package services

import (
	"database/sql"
	"errors"

	"breezehire/internal/domain"
	"breezehire/internal/repos"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// ProductAdminService is the write side of the catalog: create, full
// replace, delete. Both the JSON API and the admin pages go through
// it, so a mutation in either immediately shows in the other.
type ProductAdminService struct {
	Prods *repos.ProductRepo
}

func NewProductAdminService(prods *repos.ProductRepo) *ProductAdminService {
	return &ProductAdminService{Prods: prods}
}

func (s *ProductAdminService) Create(p domain.Product) (domain.Product, error) {
	p.ID = uuid.NewString()
	if p.Availability == "" {
		p.Availability = domain.Available
	}
	if p.ImagesJSON == "" {
		p.ImagesJSON = "[]"
	}
	if err := s.Prods.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(p.ID)
}

func (s *ProductAdminService) Update(id string, p domain.Product) (domain.Product, error) {
	ok, err := s.Prods.Update(id, p)
	if err != nil {
		return domain.Product{}, err
	}
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return s.Prods.Get(id)
}

func (s *ProductAdminService) Delete(id string) error {
	ok, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductAdminService) Get(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrProductNotFound
	}
	return p, err
}

func (s *ProductAdminService) List() ([]domain.Product, error) {
	return s.Prods.All()
}
