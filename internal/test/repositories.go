package test

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers user unless the email is already taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *user
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.ByEmail[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored accounts.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	return users, nil
}

// Update replaces the stored record.
func (s *UserRepositoryStub) Update(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	existing, ok := s.ByID[user.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.ByEmail, existing.Email)
	stored := *user
	s.ByID[stored.ID] = &stored
	s.ByEmail[stored.Email] = &stored
	return &stored, nil
}

// Delete removes the record or returns not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, existing.Email)
	delete(s.ByID, id)
	return nil
}

// ProductRepositoryStub stores menu items in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Create stores the product with a fresh identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *product
	stored.ID = s.Next
	s.Next++
	s.Products[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	products := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, *p)
	}
	return products, nil
}

// Update replaces the stored record.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Products[product.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *product
	s.Products[stored.ID] = &stored
	return &stored, nil
}

// Delete removes the record or returns not found.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// CouponRepositoryStub stores coupons in-memory for tests.
type CouponRepositoryStub struct {
	Coupons map[string]*model.Coupon
	Next    int64
	Err     error
}

// NewCouponRepositoryStub constructs stub repository with initialized map.
func NewCouponRepositoryStub() *CouponRepositoryStub {
	return &CouponRepositoryStub{Coupons: make(map[string]*model.Coupon), Next: 1}
}

// Add seeds a coupon directly, assigning an identifier when missing.
func (s *CouponRepositoryStub) Add(coupon *model.Coupon) *model.Coupon {
	stored := *coupon
	if stored.ID == 0 {
		stored.ID = s.Next
		s.Next++
	}
	stored.Code = strings.ToUpper(stored.Code)
	s.Coupons[stored.Code] = &stored
	return &stored
}

// Create stores the coupon unless the code already exists.
func (s *CouponRepositoryStub) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Coupons[coupon.Code]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	return s.Add(coupon), nil
}

// GetByCode fetches coupon by code or returns not found.
func (s *CouponRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if coupon, ok := s.Coupons[code]; ok {
		return coupon, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored coupons.
func (s *CouponRepositoryStub) List(ctx context.Context) ([]model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	coupons := make([]model.Coupon, 0, len(s.Coupons))
	for _, c := range s.Coupons {
		coupons = append(coupons, *c)
	}
	return coupons, nil
}

// Toggle flips the active flag by identifier.
func (s *CouponRepositoryStub) Toggle(ctx context.Context, id int64) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Coupons {
		if c.ID == id {
			c.IsActive = !c.IsActive
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the coupon by identifier.
func (s *CouponRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for code, c := range s.Coupons {
		if c.ID == id {
			delete(s.Coupons, code)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn            func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn           func(context.Context, int64) (*model.Order, error)
	ListByUserFn        func(context.Context, int64) ([]model.Order, error)
	ListAllFn           func(context.Context) ([]model.Order, error)
	UpdateStatusFn      func(context.Context, *model.Order) error
	SelectStaleOnlineFn func(context.Context, time.Duration, int) ([]model.Order, error)
	StatsFn             func(context.Context) (*model.AdminStats, error)

	Created []model.Order
	Updated []model.Order
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Created = append(s.Created, *order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	stored := *order
	stored.ID = int64(len(s.Created))
	stored.CreatedAt = time.Now()
	return &stored, nil
}

// GetByID delegates to the override or reports not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser delegates to the override or returns nothing.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

// ListAll delegates to the override or returns nothing.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return nil, nil
}

// UpdateStatus records the order state handed to persistence.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, order *model.Order) error {
	s.Updated = append(s.Updated, *order)
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, order)
	}
	return nil
}

// SelectStaleOnline delegates to the override or returns nothing.
func (s *OrderRepositoryStub) SelectStaleOnline(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	if s.SelectStaleOnlineFn != nil {
		return s.SelectStaleOnlineFn(ctx, olderThan, limit)
	}
	return nil, nil
}

// Stats delegates to the override or returns empty counters.
func (s *OrderRepositoryStub) Stats(ctx context.Context) (*model.AdminStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.AdminStats{}, nil
}
