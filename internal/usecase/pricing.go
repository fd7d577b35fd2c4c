package usecase

import "math"

// Fee schedule applied at checkout. Delivery is free above the threshold.
const (
	freeDeliveryThreshold = 499
	deliveryFeeAmount     = 40
	platformFeeAmount     = 5
	taxRate               = 0.05
)

// PriceBreakdown itemizes the checkout total. All amounts are whole currency
// units; Total is never negative.
type PriceBreakdown struct {
	Subtotal    int64
	DeliveryFee int64
	PlatformFee int64
	Tax         int64
	Discount    int64
	Total       int64
}

// Quote computes the order total for a subtotal and an already validated
// discount. Every place that shows or charges a total must go through this
// function so the displayed and persisted amounts cannot diverge.
func Quote(subtotal, discount int64) PriceBreakdown {
	b := PriceBreakdown{
		Subtotal:    subtotal,
		PlatformFee: platformFeeAmount,
		Tax:         int64(math.Round(float64(subtotal) * taxRate)),
		Discount:    discount,
	}
	if subtotal <= freeDeliveryThreshold {
		b.DeliveryFee = deliveryFeeAmount
	}
	b.Total = subtotal + b.DeliveryFee + b.PlatformFee + b.Tax - discount
	if b.Total < 0 {
		b.Total = 0
	}
	return b
}
