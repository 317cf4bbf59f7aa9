package models

// Item is a catalog entry. Capacity is the remaining stock and is the only
// field this system ever mutates (cart-add decrements it).
type Item struct {
	ID          uint    `gorm:"primaryKey"             json:"id"`
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description string  `gorm:"type:text"              json:"description"`
	Price       float64 `gorm:"not null;default:0"     json:"price"`
	Category    string  `gorm:"size:100;index"         json:"category"`
	ImageURL    string  `gorm:"size:255"               json:"image_url"`
	Capacity    int     `gorm:"not null;default:0"     json:"capacity"`
}
