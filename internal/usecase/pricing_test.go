package usecase

import "testing"

func TestQuoteFeeSchedule(t *testing.T) {
	cases := []struct {
		name     string
		subtotal int64
		discount int64
		want     PriceBreakdown
	}{
		{
			name:     "delivery charged at threshold",
			subtotal: 450,
			want:     PriceBreakdown{Subtotal: 450, DeliveryFee: 40, PlatformFee: 5, Tax: 23, Total: 518},
		},
		{
			name:     "delivery charged exactly at 499",
			subtotal: 499,
			want:     PriceBreakdown{Subtotal: 499, DeliveryFee: 40, PlatformFee: 5, Tax: 25, Total: 569},
		},
		{
			name:     "free delivery above threshold",
			subtotal: 600,
			want:     PriceBreakdown{Subtotal: 600, DeliveryFee: 0, PlatformFee: 5, Tax: 30, Total: 635},
		},
		{
			name:     "discount reduces total",
			subtotal: 600,
			discount: 100,
			want:     PriceBreakdown{Subtotal: 600, DeliveryFee: 0, PlatformFee: 5, Tax: 30, Discount: 100, Total: 535},
		},
		{
			name:     "total clamped at zero",
			subtotal: 10,
			discount: 1000,
			want:     PriceBreakdown{Subtotal: 10, DeliveryFee: 40, PlatformFee: 5, Tax: 1, Discount: 1000, Total: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Quote(tc.subtotal, tc.discount)
			if got != tc.want {
				t.Fatalf("Quote(%d, %d) = %+v, want %+v", tc.subtotal, tc.discount, got, tc.want)
			}
		})
	}
}
