package service

import (
	"campus-canteen/internal/domain"

	"github.com/google/uuid"
)

var _ CatalogServiceInterface = (*CatalogService)(nil)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(item *domain.Item) error {
	if item.Name == "" {
		return ErrMissingFields
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}
	if item.AvailableQty < 0 {
		return ErrNegativeQuantity
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return s.repo.CreateItem(item)
}

func (s *CatalogService) List() ([]domain.Item, error) {
	return s.repo.ListItems()
}

func (s *CatalogService) Get(id string) (*domain.Item, error) {
	return s.repo.GetItem(id)
}

// SetQuantity replaces the available quantity with an absolute value.
// Decrements happen only inside checkout, never through this path.
func (s *CatalogService) SetQuantity(id string, qty int) (*domain.Item, error) {
	if qty < 0 {
		return nil, ErrNegativeQuantity
	}
	return s.repo.SetQuantity(id, qty)
}
