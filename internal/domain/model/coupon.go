package model

import (
	"math"
	"time"
)

// DiscountType selects how a coupon reduces the subtotal.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon is an admin-managed discount code. Codes are stored upper-cased.
type Coupon struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	DiscountValue float64
	MinOrderValue int64
	MaxDiscount   int64 // cap for percentage discounts, 0 = uncapped
	ValidFrom     time.Time
	ValidUntil    time.Time
	UsageLimit    int // 0 = unlimited
	UsedCount     int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Discount is the result of a successful coupon validation.
type Discount struct {
	Code   string
	Amount int64
	Type   DiscountType
}

// Expired reports whether the coupon's validity window has closed at given time.
func (c *Coupon) Expired(now time.Time) bool {
	return now.After(c.ValidUntil)
}

// Exhausted reports whether the usage limit has been consumed.
func (c *Coupon) Exhausted() bool {
	return c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit
}

// DiscountFor computes the discount amount for the given subtotal,
// rounded to whole currency units and never exceeding the subtotal.
func (c *Coupon) DiscountFor(subtotal int64) int64 {
	var raw float64
	switch c.DiscountType {
	case DiscountPercentage:
		raw = float64(subtotal) * c.DiscountValue / 100
		if c.MaxDiscount > 0 && raw > float64(c.MaxDiscount) {
			raw = float64(c.MaxDiscount)
		}
	default:
		raw = c.DiscountValue
	}
	if raw > float64(subtotal) {
		raw = float64(subtotal)
	}
	return int64(math.Round(raw))
}
