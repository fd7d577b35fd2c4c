package handlers

import (
	"context"

	"github.com/foodkart/foodkart/internal/adapter/payment"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/usecase"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	FederatedLogin(ctx context.Context, token string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, update usecase.ProfileUpdate) (*model.User, error)
	UpdatePassword(ctx context.Context, userID int64, current, next string) (string, error)
	Users(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, name, email, password string, role model.Role) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CatalogFacade exposes menu management to handlers.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CouponFacade exposes coupon validation and administration.
type CouponFacade interface {
	ValidateCoupon(ctx context.Context, code string, subtotal int64) (*model.Discount, error)
	Coupons(ctx context.Context) ([]model.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	ToggleCoupon(ctx context.Context, id int64) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id int64) error
}

// OrderFacade encapsulates checkout and order lifecycle operations.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, input usecase.CheckoutInput) (*model.Order, error)
	MyOrders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
	Stats(ctx context.Context) (*model.AdminStats, error)
}

// PaymentFacade provides gateway order creation and verification.
type PaymentFacade interface {
	CreatePaymentOrder(ctx context.Context, amount int64) (*payment.GatewayOrder, error)
	VerifyPayment(gatewayOrderID, paymentID, signature string) bool
}

// AssistantFacade answers storefront chat messages.
type AssistantFacade interface {
	Chat(ctx context.Context, message string) (string, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CouponFacade
	OrderFacade
	PaymentFacade
	AssistantFacade
}
