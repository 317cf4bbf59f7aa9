package repositories

import (
	"github.com/zephyrlabs/zephyr/app/models"
	"github.com/zephyrlabs/zephyr/pkg/orm"
	"gorm.io/gorm"
)

// PurchaseRepository handles database operations for PurchaseHistory.
type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create appends one purchase row.
func (r *PurchaseRepository) Create(p *models.PurchaseHistory) error {
	return orm.New(r.db).Create(p)
}

// AllForUser returns every purchase for the username, oldest first.
func (r *PurchaseRepository) AllForUser(username string) ([]models.PurchaseHistory, error) {
	purchases := []models.PurchaseHistory{}
	err := orm.New(r.db).
		Model(&models.PurchaseHistory{}).
		Where("username = ?", username).
		Order("id").
		Get(&purchases)
	return purchases, err
}
