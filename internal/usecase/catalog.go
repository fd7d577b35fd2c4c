package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/domain/repository"
)

const defaultRating = 4.5

// CatalogUseCase manages the menu.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// Create adds a menu item after validating the fixed category set.
func (u *CatalogUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || product.Description == "" || product.Image == "" || product.Price <= 0 {
		return nil, domainErrors.ErrInvalidProduct
	}
	if !model.ValidCategory(product.Category) {
		return nil, domainErrors.ErrInvalidProduct
	}
	if product.Rating == 0 {
		product.Rating = defaultRating
	}
	return u.products.Create(ctx, product)
}

// Get fetches one product.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns the whole menu.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Update replaces mutable product fields.
func (u *CatalogUseCase) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.Category != "" && !model.ValidCategory(product.Category) {
		return nil, domainErrors.ErrInvalidProduct
	}
	return u.products.Update(ctx, product)
}

// Delete removes a product from the menu. Existing orders keep their snapshot.
func (u *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}
