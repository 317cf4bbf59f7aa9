package models

import "time"

// PurchaseHistory is one completed checkout. Items is a newline-delimited
// list of item ids — the denormalised blob the cart page splits on "\n".
type PurchaseHistory struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"    json:"id"`
	Username   string    `gorm:"size:255;not null;index"     json:"username"`
	Items      string    `gorm:"type:text;not null"          json:"items"`
	TotalPrice float64   `gorm:"not null"                    json:"total_price"`
	OrderDate  time.Time `gorm:"autoCreateTime"              json:"order_date"`
}

// TableName keeps the legacy table name.
func (PurchaseHistory) TableName() string { return "purchase_history" }
