package service

import (
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/repository"
)

// CatalogService exposes the sweet catalog together with stock
// management for purchases and restocks.
type CatalogService struct {
	sweetRepo repository.SweetRepository
}

// NewCatalogService builds a catalog service.
func NewCatalogService(sweetRepo repository.SweetRepository) *CatalogService {
	return &CatalogService{sweetRepo: sweetRepo}
}

// List returns catalog entries matching the filter.
func (s *CatalogService) List(filter repository.SweetListFilter) ([]models.Sweet, int64, error) {
	return s.sweetRepo.List(filter)
}

// Get returns one sweet.
func (s *CatalogService) Get(id uint) (*models.Sweet, error) {
	sweet, err := s.sweetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, ErrSweetNotFound
	}
	return sweet, nil
}

// CreateSweetInput describes a new catalog entry.
type CreateSweetInput struct {
	Name        string       `json:"name" binding:"required"`
	Category    string       `json:"category" binding:"required"`
	Price       models.Money `json:"price"`
	Stock       int          `json:"quantity"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
}

// Create adds a sweet to the catalog.
func (s *CatalogService) Create(input CreateSweetInput) (*models.Sweet, error) {
	sweet := &models.Sweet{
		Name:        input.Name,
		Category:    input.Category,
		PriceAmount: input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.sweetRepo.Create(sweet); err != nil {
		return nil, err
	}
	return sweet, nil
}

// Purchase decrements stock for a direct catalog purchase.
func (s *CatalogService) Purchase(id uint, quantity int) (*models.Sweet, error) {
	if quantity <= 0 {
		return nil, ErrQuantityInvalid
	}
	sweet, err := s.sweetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, ErrSweetNotFound
	}

	affected, err := s.sweetRepo.DecrementStock(id, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStockInsufficient
	}
	return s.sweetRepo.GetByID(id)
}

// Restock adds units back to a sweet.
func (s *CatalogService) Restock(id uint, quantity int) (*models.Sweet, error) {
	if quantity <= 0 {
		return nil, ErrQuantityInvalid
	}
	affected, err := s.sweetRepo.IncrementStock(id, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrSweetNotFound
	}
	return s.sweetRepo.GetByID(id)
}
