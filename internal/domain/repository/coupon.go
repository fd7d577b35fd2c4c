package repository

import (
	"context"

	"github.com/foodkart/foodkart/internal/domain/model"
)

// CouponRepository describes persistence operations for discount codes.
type CouponRepository interface {
	Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Toggle(ctx context.Context, id int64) (*model.Coupon, error)
	Delete(ctx context.Context, id int64) error
}
