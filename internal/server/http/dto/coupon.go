package dto

import "time"

// ValidateCouponRequest asks whether a code applies to the given subtotal.
type ValidateCouponRequest struct {
	Code       string `json:"code"`
	OrderTotal int64  `json:"orderTotal"`
}

// DiscountResponse reports a successful coupon validation.
type DiscountResponse struct {
	Code     string `json:"code"`
	Discount int64  `json:"discount"`
	Type     string `json:"type"`
}

// CreateCouponRequest registers a new coupon.
type CreateCouponRequest struct {
	Code          string    `json:"code"`
	DiscountType  string    `json:"discountType"`
	DiscountValue float64   `json:"discountValue"`
	MinOrderValue int64     `json:"minOrderValue"`
	MaxDiscount   int64     `json:"maxDiscount"`
	ValidFrom     time.Time `json:"validFrom,omitempty"`
	ValidUntil    time.Time `json:"validUntil"`
	UsageLimit    int       `json:"usageLimit"`
}

// CouponResponse is the full coupon record for the admin screen.
type CouponResponse struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discountType"`
	DiscountValue float64   `json:"discountValue"`
	MinOrderValue int64     `json:"minOrderValue"`
	MaxDiscount   int64     `json:"maxDiscount"`
	ValidFrom     time.Time `json:"validFrom"`
	ValidUntil    time.Time `json:"validUntil"`
	UsageLimit    int       `json:"usageLimit"`
	UsedCount     int       `json:"usedCount"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"created_at"`
}
