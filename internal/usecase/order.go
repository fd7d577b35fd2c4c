package usecase

import (
	"context"
	"time"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/domain/repository"
)

const minAddressLength = 10

// CheckoutItem references a product and a quantity in a checkout request.
type CheckoutItem struct {
	ProductID int64
	Quantity  int
}

// CheckoutInput carries everything needed to place an order. DeclaredTotal is
// the total the client displayed; zero skips the cross-check. Payment is the
// gateway receipt for online orders paid up front; PaymentOrderID and
// PaymentSignature identify it for signature verification, which the caller
// performs before handing the receipt here.
type CheckoutInput struct {
	Items            []CheckoutItem
	ShippingAddress  string
	PaymentMethod    model.PaymentMethod
	CouponCode       string
	DeclaredTotal    int64
	Payment          *model.PaymentResult
	PaymentOrderID   string
	PaymentSignature string
}

// OrderUseCase encapsulates checkout and the order status lifecycle.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	coupons  *CouponUseCase
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, coupons *CouponUseCase) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, coupons: coupons, now: time.Now}
}

// Checkout places an order. The subtotal and total are recomputed from
// server-held product prices, never trusted from the client; a declared total
// that disagrees is rejected. Coupon usage is consumed atomically by the
// repository in the same transaction that inserts the order.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64, input CheckoutInput) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	if len(input.ShippingAddress) < minAddressLength {
		return nil, domainErrors.ErrInvalidAddress
	}
	if input.PaymentMethod != model.PaymentCOD && input.PaymentMethod != model.PaymentOnline {
		return nil, domainErrors.ErrInvalidPaymentMethod
	}

	var (
		items    = make([]model.OrderItem, 0, len(input.Items))
		subtotal int64
	)
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, domainErrors.ErrInvalidQuantity
		}
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Image:     product.Image,
		})
		subtotal += product.Price * int64(item.Quantity)
	}

	var discount *model.Discount
	if input.CouponCode != "" {
		var err error
		discount, err = u.coupons.Validate(ctx, input.CouponCode, subtotal)
		if err != nil {
			return nil, err
		}
	}

	var discountAmount int64
	if discount != nil {
		discountAmount = discount.Amount
	}
	quote := Quote(subtotal, discountAmount)

	if input.DeclaredTotal > 0 && input.DeclaredTotal != quote.Total {
		return nil, domainErrors.ErrTotalMismatch
	}

	order := &model.Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Discount:        discountAmount,
		TotalAmount:     quote.Total,
		Status:          model.OrderStatusPlaced,
	}
	if discount != nil {
		order.CouponCode = discount.Code
	}
	if input.PaymentMethod == model.PaymentOnline && input.Payment != nil {
		order.PaymentResult = input.Payment
		order.IsPaid = true
		t := u.now()
		order.PaidAt = &t
	}

	return u.orders.Create(ctx, order)
}

// UpdateStatus applies one status transition and its side effects. Moving into
// Delivered marks the order delivered and, for COD, paid.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainErrors.ErrInvalidTransition
	}

	order.ApplyStatus(status, u.now())
	if err := u.orders.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order for the back office.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Stats aggregates dashboard counters.
func (u *OrderUseCase) Stats(ctx context.Context) (*model.AdminStats, error) {
	return u.orders.Stats(ctx)
}

// SelectStaleOnline returns unpaid online orders older than the given age.
func (u *OrderUseCase) SelectStaleOnline(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	return u.orders.SelectStaleOnline(ctx, olderThan, limit)
}
