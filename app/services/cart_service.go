package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zephyrlabs/zephyr/app/models"
	"github.com/zephyrlabs/zephyr/app/repositories"
	"github.com/zephyrlabs/zephyr/pkg/metrics"
	"gorm.io/gorm"
)

// CartService implements cart-add, checkout, and transaction history.
type CartService struct {
	items     *repositories.ItemRepository
	purchases *repositories.PurchaseRepository
}

func NewCartService(items *repositories.ItemRepository, purchases *repositories.PurchaseRepository) *CartService {
	return &CartService{items: items, purchases: purchases}
}

// AddToCart takes one unit of stock and returns the pre-decrement snapshot
// the cart page stores. The decrement is a single conditional UPDATE, so
// two concurrent adds at capacity 1 cannot both succeed.
func (s *CartService) AddToCart(username, rawItemID string) (models.Item, error) {
	if username == "" {
		return models.Item{}, ErrLoginRequired
	}

	id, err := strconv.ParseUint(rawItemID, 10, 32)
	if err != nil {
		metrics.CartAdds.WithLabelValues("not_found").Inc()
		return models.Item{}, ErrItemNotFound
	}

	snapshot, err := s.items.Find(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		metrics.CartAdds.WithLabelValues("not_found").Inc()
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("cart: load item %d: %w", id, err)
	}

	taken, err := s.items.DecrementCapacity(uint(id))
	if err != nil {
		return models.Item{}, fmt.Errorf("cart: decrement item %d: %w", id, err)
	}
	if !taken {
		metrics.CartAdds.WithLabelValues("out_of_stock").Inc()
		return models.Item{}, ErrOutOfStock
	}

	metrics.CartAdds.WithLabelValues("ok").Inc()
	return snapshot, nil
}

// Checkout records one purchase row with the client-supplied item-id blob
// and total. The total is trusted as-is; see DESIGN.md.
func (s *CartService) Checkout(username, items string, total float64) (models.PurchaseHistory, error) {
	if username == "" {
		return models.PurchaseHistory{}, ErrLoginRequired
	}
	if strings.TrimSpace(items) == "" {
		return models.PurchaseHistory{}, ErrEmptyCart
	}

	purchase := models.PurchaseHistory{
		Username:   username,
		Items:      items,
		TotalPrice: total,
	}
	if err := s.purchases.Create(&purchase); err != nil {
		return models.PurchaseHistory{}, fmt.Errorf("cart: record purchase: %w", err)
	}

	metrics.Checkouts.Inc()
	return purchase, nil
}

// Transactions returns the full purchase history for a username.
func (s *CartService) Transactions(username string) ([]models.PurchaseHistory, error) {
	purchases, err := s.purchases.AllForUser(username)
	if err != nil {
		return nil, fmt.Errorf("cart: transactions for %s: %w", username, err)
	}
	return purchases, nil
}
