package seeders

import (
	"github.com/zephyrlabs/zephyr/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("items", SeedItems)
}

// SeedItems fills the catalog with the storefront's four categories.
// It is a no-op when the items table already has rows, so re-running
// `zephyr seed` is safe.
func SeedItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []models.Item{
		{
			Name:        "Classic Oxford Shirt",
			Description: "Button-down collar.\n100% cotton.\nMachine washable.",
			Price:       39.99,
			Category:    "shirts",
			ImageURL:    "/imgs/oxford-shirt.jpg",
			Capacity:    25,
		},
		{
			Name:        "Linen Camp Shirt",
			Description: "Relaxed fit.\nBreathable linen blend.\nChest pocket.",
			Price:       34.99,
			Category:    "shirts",
			ImageURL:    "/imgs/camp-shirt.jpg",
			Capacity:    18,
		},
		{
			Name:        "Graphic Tee",
			Description: "Soft jersey knit.\nScreen-printed front.\nPre-shrunk.",
			Price:       19.99,
			Category:    "shirts",
			ImageURL:    "/imgs/graphic-tee.jpg",
			Capacity:    40,
		},
		{
			Name:        "Slim Chinos",
			Description: "Tapered leg.\nStretch twill.\nFour pockets.",
			Price:       49.99,
			Category:    "pants",
			ImageURL:    "/imgs/slim-chinos.jpg",
			Capacity:    22,
		},
		{
			Name:        "Relaxed Denim",
			Description: "Mid-rise.\nRigid denim that breaks in over time.\nStraight leg.",
			Price:       59.99,
			Category:    "pants",
			ImageURL:    "/imgs/relaxed-denim.jpg",
			Capacity:    15,
		},
		{
			Name:        "Windbreaker",
			Description: "Water-resistant shell.\nPackable hood.\nZip pockets.",
			Price:       74.99,
			Category:    "outerwear",
			ImageURL:    "/imgs/windbreaker.jpg",
			Capacity:    12,
		},
		{
			Name:        "Wool Peacoat",
			Description: "Double-breasted.\nWool blend.\nSatin lining.",
			Price:       149.99,
			Category:    "outerwear",
			ImageURL:    "/imgs/peacoat.jpg",
			Capacity:    8,
		},
		{
			Name:        "Canvas Belt",
			Description: "Adjustable webbing.\nMetal buckle.",
			Price:       14.99,
			Category:    "accessories",
			ImageURL:    "/imgs/canvas-belt.jpg",
			Capacity:    50,
		},
		{
			Name:        "Beanie",
			Description: "Ribbed knit.\nOne size fits most.",
			Price:       12.99,
			Category:    "accessories",
			ImageURL:    "/imgs/beanie.jpg",
			Capacity:    35,
		},
		{
			Name:        "Weekender Duffel",
			Description: "Water-repellent canvas.\nRemovable shoulder strap.\nInterior organizer pockets.",
			Price:       89.99,
			Category:    "accessories",
			ImageURL:    "/imgs/duffel.jpg",
			Capacity:    10,
		},
	}

	return db.Create(&items).Error
}
