package facadestub

import (
	"context"
	"time"

	"github.com/foodkart/foodkart/internal/adapter/payment"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/usecase"
)

// FacadeStub simulates the full application facade for handler and router
// tests. Every method has a sane default and a function override.
type FacadeStub struct {
	RegisterFn       func(context.Context, string, string, string, model.Role) (*model.User, string, error)
	AuthenticateFn   func(context.Context, string, string) (*model.User, string, error)
	FederatedLoginFn func(context.Context, string) (*model.User, string, error)
	ParseTokenFn     func(string) (int64, error)
	UserByIDFn       func(context.Context, int64) (*model.User, error)
	UpdateProfileFn  func(context.Context, int64, usecase.ProfileUpdate) (*model.User, error)
	UpdatePasswordFn func(context.Context, int64, string, string) (string, error)
	UsersFn          func(context.Context) ([]model.User, error)
	CreateUserFn     func(context.Context, string, string, string, model.Role) (*model.User, error)
	UpdateUserFn     func(context.Context, *model.User) (*model.User, error)
	DeleteUserFn     func(context.Context, int64) error

	ProductsFn      func(context.Context) ([]model.Product, error)
	ProductFn       func(context.Context, int64) (*model.Product, error)
	CreateProductFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn func(context.Context, *model.Product) (*model.Product, error)
	DeleteProductFn func(context.Context, int64) error

	ValidateCouponFn func(context.Context, string, int64) (*model.Discount, error)
	CouponsFn        func(context.Context) ([]model.Coupon, error)
	CreateCouponFn   func(context.Context, *model.Coupon) (*model.Coupon, error)
	ToggleCouponFn   func(context.Context, int64) (*model.Coupon, error)
	DeleteCouponFn   func(context.Context, int64) error

	CheckoutFn          func(context.Context, int64, usecase.CheckoutInput) (*model.Order, error)
	MyOrdersFn          func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn         func(context.Context) ([]model.Order, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	StatsFn             func(context.Context) (*model.AdminStats, error)

	CreatePaymentOrderFn func(context.Context, int64) (*payment.GatewayOrder, error)
	VerifyPaymentFn      func(string, string, string) bool
	ChatFn               func(context.Context, string) (string, error)

	StaleOnlineOrdersFn func(context.Context, time.Duration, int) ([]model.Order, error)
	CancelOrderFn       func(context.Context, int64) (*model.Order, error)
}

func (s *FacadeStub) Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password, role)
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: role}, "token", nil
}

func (s *FacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

func (s *FacadeStub) FederatedLogin(ctx context.Context, token string) (*model.User, string, error) {
	if s.FederatedLoginFn != nil {
		return s.FederatedLoginFn(ctx, token)
	}
	return &model.User{ID: 1, Email: "guest@example.com", Role: model.RoleUser}, "token", nil
}

func (s *FacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

func (s *FacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Role: model.RoleUser}, nil
}

func (s *FacadeStub) UpdateProfile(ctx context.Context, userID int64, update usecase.ProfileUpdate) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, update)
	}
	return &model.User{ID: userID, Name: update.Name, Email: update.Email, Role: model.RoleUser}, nil
}

func (s *FacadeStub) UpdatePassword(ctx context.Context, userID int64, current, next string) (string, error) {
	if s.UpdatePasswordFn != nil {
		return s.UpdatePasswordFn(ctx, userID, current, next)
	}
	return "token", nil
}

func (s *FacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) CreateUser(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, name, email, password, role)
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: role}, nil
}

func (s *FacadeStub) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, user)
	}
	return user, nil
}

func (s *FacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

func (s *FacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id}, nil
}

func (s *FacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	return product, nil
}

func (s *FacadeStub) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return product, nil
}

func (s *FacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s *FacadeStub) ValidateCoupon(ctx context.Context, code string, subtotal int64) (*model.Discount, error) {
	if s.ValidateCouponFn != nil {
		return s.ValidateCouponFn(ctx, code, subtotal)
	}
	return &model.Discount{Code: code, Amount: 0, Type: model.DiscountFixed}, nil
}

func (s *FacadeStub) Coupons(ctx context.Context) ([]model.Coupon, error) {
	if s.CouponsFn != nil {
		return s.CouponsFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if s.CreateCouponFn != nil {
		return s.CreateCouponFn(ctx, coupon)
	}
	return coupon, nil
}

func (s *FacadeStub) ToggleCoupon(ctx context.Context, id int64) (*model.Coupon, error) {
	if s.ToggleCouponFn != nil {
		return s.ToggleCouponFn(ctx, id)
	}
	return &model.Coupon{ID: id}, nil
}

func (s *FacadeStub) DeleteCoupon(ctx context.Context, id int64) error {
	if s.DeleteCouponFn != nil {
		return s.DeleteCouponFn(ctx, id)
	}
	return nil
}

func (s *FacadeStub) Checkout(ctx context.Context, userID int64, input usecase.CheckoutInput) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, input)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPlaced}, nil
}

func (s *FacadeStub) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID)
	}
	return nil, nil
}

func (s *FacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

func (s *FacadeStub) Stats(ctx context.Context) (*model.AdminStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.AdminStats{}, nil
}

func (s *FacadeStub) CreatePaymentOrder(ctx context.Context, amount int64) (*payment.GatewayOrder, error) {
	if s.CreatePaymentOrderFn != nil {
		return s.CreatePaymentOrderFn(ctx, amount)
	}
	return &payment.GatewayOrder{ID: "order_test", Amount: amount * 100, Currency: "INR", Status: "created"}, nil
}

func (s *FacadeStub) VerifyPayment(gatewayOrderID, paymentID, signature string) bool {
	if s.VerifyPaymentFn != nil {
		return s.VerifyPaymentFn(gatewayOrderID, paymentID, signature)
	}
	return true
}

func (s *FacadeStub) Chat(ctx context.Context, message string) (string, error) {
	if s.ChatFn != nil {
		return s.ChatFn(ctx, message)
	}
	return "reply", nil
}

func (s *FacadeStub) StaleOnlineOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	if s.StaleOnlineOrdersFn != nil {
		return s.StaleOnlineOrdersFn(ctx, olderThan, limit)
	}
	return nil, nil
}

func (s *FacadeStub) CancelOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCancelled}, nil
}
