package services

import (
	"fmt"

	"horeca_backend/internal/models"
	"horeca_backend/internal/repositories"
)

// CatalogService exposes the shared product reference data. All listings come
// back sorted by name; sorting is part of the read contract.
type CatalogService interface {
	GetProducts() ([]models.Product, error)
	GetCategories() ([]models.Category, error)
	GetSubcategories() ([]models.Subcategory, error)
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: repo}
}

func (s *catalogService) GetProducts() ([]models.Product, error) {
	products, err := s.catalogRepo.GetProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

func (s *catalogService) GetCategories() ([]models.Category, error) {
	categories, err := s.catalogRepo.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) GetSubcategories() ([]models.Subcategory, error) {
	subcategories, err := s.catalogRepo.GetSubcategories()
	if err != nil {
		return nil, fmt.Errorf("failed to get subcategories: %w", err)
	}
	return subcategories, nil
}
