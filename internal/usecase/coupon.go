package usecase

import (
	"context"
	"time"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/domain/repository"
)

const defaultUsageLimit = 100

// CouponUseCase encapsulates coupon administration and validation logic.
type CouponUseCase struct {
	coupons repository.CouponRepository
	now     func() time.Time
}

// NewCouponUseCase constructs CouponUseCase.
func NewCouponUseCase(coupons repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{coupons: coupons, now: time.Now}
}

// Validate decides whether the code applies to the given subtotal and reports
// the discount. It is a dry run: no usage is consumed here; redemption happens
// atomically when the order is created.
//
// Note: validFrom is intentionally not checked as a lower bound, matching the
// behavior customers already rely on.
func (u *CouponUseCase) Validate(ctx context.Context, code string, subtotal int64) (*model.Discount, error) {
	coupon, err := u.coupons.GetByCode(ctx, NormalizeCouponCode(code))
	if err != nil {
		return nil, err
	}

	if !coupon.IsActive {
		return nil, domainErrors.ErrCouponInactive
	}

	if coupon.Expired(u.now()) {
		return nil, domainErrors.ErrCouponExpired
	}

	if coupon.Exhausted() {
		return nil, domainErrors.ErrCouponLimitReached
	}

	if subtotal < coupon.MinOrderValue {
		return nil, &domainErrors.MinOrderValueError{Required: coupon.MinOrderValue}
	}

	return &model.Discount{
		Code:   coupon.Code,
		Amount: coupon.DiscountFor(subtotal),
		Type:   coupon.DiscountType,
	}, nil
}

// Create registers a new coupon. The code is canonicalized; zero usage limit
// falls back to the default.
func (u *CouponUseCase) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	coupon.Code = NormalizeCouponCode(coupon.Code)
	if coupon.Code == "" {
		return nil, domainErrors.ErrInvalidCoupon
	}
	if coupon.DiscountType != model.DiscountPercentage && coupon.DiscountType != model.DiscountFixed {
		return nil, domainErrors.ErrInvalidCoupon
	}
	if coupon.DiscountValue <= 0 || coupon.ValidUntil.IsZero() {
		return nil, domainErrors.ErrInvalidCoupon
	}
	if coupon.UsageLimit == 0 {
		coupon.UsageLimit = defaultUsageLimit
	}
	if coupon.ValidFrom.IsZero() {
		coupon.ValidFrom = u.now()
	}
	coupon.IsActive = true
	return u.coupons.Create(ctx, coupon)
}

// List returns all coupons, newest first.
func (u *CouponUseCase) List(ctx context.Context) ([]model.Coupon, error) {
	return u.coupons.List(ctx)
}

// Toggle flips the manual on/off switch.
func (u *CouponUseCase) Toggle(ctx context.Context, id int64) (*model.Coupon, error) {
	return u.coupons.Toggle(ctx, id)
}

// Delete removes a coupon permanently.
func (u *CouponUseCase) Delete(ctx context.Context, id int64) error {
	return u.coupons.Delete(ctx, id)
}
