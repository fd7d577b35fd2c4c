package model

import "time"

// Categories accepted for menu items.
var ProductCategories = []string{
	"Biryani", "Curries", "Starters", "Chinese", "Breads", "Desserts", "Beverages",
}

// Product is a single menu item. Price is whole currency units.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        int64
	Image        string
	Category     string
	IsVeg        bool
	IsBestseller bool
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidCategory reports whether the category belongs to the fixed menu set.
func ValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
