package repositories

import (
	"time"

	"github.com/zephyrlabs/zephyr/app/models"
	"github.com/zephyrlabs/zephyr/pkg/cache"
	"github.com/zephyrlabs/zephyr/pkg/orm"
	"gorm.io/gorm"
)

// catalogCacheKey caches the unfiltered item list. It is invalidated on
// every capacity decrement so the grid never shows stale stock for long.
const (
	catalogCacheKey = "zephyr:items:all"
	catalogCacheTTL = 30 * time.Second
)

// ItemRepository handles database operations for Item.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// All returns every catalog item, read through the redis cache.
// The slice is non-nil even when the catalog is empty so the response
// encodes as [] rather than null.
func (r *ItemRepository) All() ([]models.Item, error) {
	items := []models.Item{}
	err := orm.New(r.db).Model(&models.Item{}).Order("id").Cache(catalogCacheKey, catalogCacheTTL, &items)
	return items, err
}

// Search filters by substring on name/description and by exact category.
// Both filters are optional and combine conjunctively; no filters means the
// full catalog.
func (r *ItemRepository) Search(term, category string) ([]models.Item, error) {
	q := orm.New(r.db).Model(&models.Item{})

	if term != "" {
		q = q.Where("(name LIKE ? OR description LIKE ?)", "%"+term+"%", "%"+term+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	items := []models.Item{}
	err := q.Order("id").Get(&items)
	return items, err
}

// Find looks up one item by primary key.
func (r *ItemRepository) Find(id uint) (models.Item, error) {
	var item models.Item
	err := orm.New(r.db).Model(&models.Item{}).Where("id = ?", id).First(&item)
	return item, err
}

// DecrementCapacity atomically takes one unit of stock:
//
//	UPDATE items SET capacity = capacity - 1 WHERE id = ? AND capacity > 0
//
// Returns true when a row was updated. A false return means the item is
// missing or out of stock — the conditional update is what closes the
// check-then-act race between concurrent cart adds.
func (r *ItemRepository) DecrementCapacity(id uint) (bool, error) {
	rows, err := orm.New(r.db).
		Model(&models.Item{}).
		Where("id = ? AND capacity > 0", id).
		UpdateColumn("capacity", orm.Expr("capacity - 1"))
	if err != nil {
		return false, err
	}

	if rows > 0 {
		cache.Del(catalogCacheKey) //nolint:errcheck
	}
	return rows > 0, nil
}
