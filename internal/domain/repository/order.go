package repository

import (
	"context"
	"time"

	"github.com/foodkart/foodkart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
// Create consumes coupon usage atomically in the same transaction when the
// order carries a coupon code.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, order *model.Order) error
	SelectStaleOnline(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error)
	Stats(ctx context.Context) (*model.AdminStats, error)
}
