package dto

import "time"

// ProductRequest creates or updates a menu item.
type ProductRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        int64   `json:"price"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	IsVeg        bool    `json:"isVeg"`
	IsBestseller bool    `json:"isBestseller"`
	Rating       float64 `json:"rating,omitempty"`
}

// ProductResponse is a menu item as shown to clients.
type ProductResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	Image        string    `json:"image"`
	Category     string    `json:"category"`
	IsVeg        bool      `json:"isVeg"`
	IsBestseller bool      `json:"isBestseller"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}
