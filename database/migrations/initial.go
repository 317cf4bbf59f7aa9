package migrations

import (
	"github.com/zephyrlabs/zephyr/app/models"
	"github.com/zephyrlabs/zephyr/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_items_table", &CreateItemsTable{})
	migration.Register("20260101000001_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000002_create_purchase_history_table", &CreatePurchaseHistoryTable{})
}

// -------- 0001: items --------

type CreateItemsTable struct{}

func (m *CreateItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Item{})
}

func (m *CreateItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("items")
}

// -------- 0002: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0003: purchase_history --------

type CreatePurchaseHistoryTable struct{}

func (m *CreatePurchaseHistoryTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.PurchaseHistory{})
}

func (m *CreatePurchaseHistoryTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("purchase_history")
}
