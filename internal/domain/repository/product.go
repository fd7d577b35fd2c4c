package repository

import (
	"context"

	"github.com/foodkart/foodkart/internal/domain/model"
)

// ProductRepository describes persistence operations for menu items.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}
