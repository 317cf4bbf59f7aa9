package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/zephyrlabs/zephyr/app/models"
	"github.com/zephyrlabs/zephyr/app/repositories"
	"gorm.io/gorm"
)

// CatalogService serves the item grid, search, and detail pages.
type CatalogService struct {
	items *repositories.ItemRepository
}

func NewCatalogService(items *repositories.ItemRepository) *CatalogService {
	return &CatalogService{items: items}
}

// List returns the full catalog.
func (s *CatalogService) List() ([]models.Item, error) {
	items, err := s.items.All()
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	return items, nil
}

// Search filters by substring (name or description) and category. Both
// filters are optional; an empty result is not an error.
func (s *CatalogService) Search(term, category string) ([]models.Item, error) {
	items, err := s.items.Search(term, category)
	if err != nil {
		return nil, fmt.Errorf("catalog: search: %w", err)
	}
	return items, nil
}

// Get returns one item by its id as it appears in the URL. A malformed or
// unknown id is a not-found, not an internal error.
func (s *CatalogService) Get(rawID string) (models.Item, error) {
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return models.Item{}, ErrItemNotFound
	}

	item, err := s.items.Find(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("catalog: get %d: %w", id, err)
	}
	return item, nil
}
