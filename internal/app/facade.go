package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/foodkart/foodkart/internal/adapter/identity"
	"github.com/foodkart/foodkart/internal/adapter/payment"
	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/usecase"
)

// PaymentProvider is the gateway surface the facade depends on.
type PaymentProvider interface {
	CreateOrder(ctx context.Context, amount int64) (*payment.GatewayOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

// IdentityProvider verifies federated login tokens.
type IdentityProvider interface {
	Verify(ctx context.Context, token string) (*identity.Identity, error)
}

// AssistantProvider generates chat replies for the storefront assistant.
type AssistantProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StorefrontFacade is the single application surface handlers and workers
// talk to.
type StorefrontFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	coupons   *usecase.CouponUseCase
	orders    *usecase.OrderUseCase
	gateway   PaymentProvider
	assistant AssistantProvider
	identity  IdentityProvider
}

// NewStorefrontFacade constructs the facade over the use cases and adapters.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	coupons *usecase.CouponUseCase,
	orders *usecase.OrderUseCase,
	gateway PaymentProvider,
	assistant AssistantProvider,
	identity IdentityProvider,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:      auth,
		catalog:   catalog,
		coupons:   coupons,
		orders:    orders,
		gateway:   gateway,
		assistant: assistant,
		identity:  identity,
	}
}

// --- auth ---

func (f *StorefrontFacade) Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password, role)
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

// FederatedLogin verifies a provider token and signs the attested account in,
// registering it on first contact. A token the provider refuses reads the same
// as a bad password to the client.
func (f *StorefrontFacade) FederatedLogin(ctx context.Context, token string) (*model.User, string, error) {
	ident, err := f.identity.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, identity.ErrTokenRejected) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	return f.auth.FederatedLogin(ctx, ident.Name, ident.Email, ident.Picture)
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StorefrontFacade) UpdateProfile(ctx context.Context, userID int64, update usecase.ProfileUpdate) (*model.User, error) {
	return f.auth.UpdateDetails(ctx, userID, update)
}

func (f *StorefrontFacade) UpdatePassword(ctx context.Context, userID int64, current, next string) (string, error) {
	return f.auth.UpdatePassword(ctx, userID, current, next)
}

func (f *StorefrontFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.auth.Users(ctx)
}

func (f *StorefrontFacade) CreateUser(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	user, _, err := f.auth.Register(ctx, name, email, password, role)
	return user, err
}

func (f *StorefrontFacade) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return f.auth.UpdateUser(ctx, user)
}

func (f *StorefrontFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.auth.DeleteUser(ctx, id)
}

// --- catalog ---

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Update(ctx, product)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.Delete(ctx, id)
}

// --- coupons ---

func (f *StorefrontFacade) ValidateCoupon(ctx context.Context, code string, subtotal int64) (*model.Discount, error) {
	return f.coupons.Validate(ctx, code, subtotal)
}

func (f *StorefrontFacade) Coupons(ctx context.Context) ([]model.Coupon, error) {
	return f.coupons.List(ctx)
}

func (f *StorefrontFacade) CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	return f.coupons.Create(ctx, coupon)
}

func (f *StorefrontFacade) ToggleCoupon(ctx context.Context, id int64) (*model.Coupon, error) {
	return f.coupons.Toggle(ctx, id)
}

func (f *StorefrontFacade) DeleteCoupon(ctx context.Context, id int64) error {
	return f.coupons.Delete(ctx, id)
}

// --- orders ---

// Checkout places an order. A prepaid receipt is only honoured when its
// gateway signature checks out, so a client cannot mark its own order paid.
func (f *StorefrontFacade) Checkout(ctx context.Context, userID int64, input usecase.CheckoutInput) (*model.Order, error) {
	if input.Payment != nil && !f.gateway.VerifySignature(input.PaymentOrderID, input.Payment.ID, input.PaymentSignature) {
		return nil, domainErrors.ErrPaymentNotVerified
	}
	return f.orders.Checkout(ctx, userID, input)
}

func (f *StorefrontFacade) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StorefrontFacade) Stats(ctx context.Context) (*model.AdminStats, error) {
	return f.orders.Stats(ctx)
}

// StaleOnlineOrders returns unpaid online orders older than the given age.
func (f *StorefrontFacade) StaleOnlineOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	return f.orders.SelectStaleOnline(ctx, olderThan, limit)
}

// CancelOrder moves an order to Cancelled through the status machine.
func (f *StorefrontFacade) CancelOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, model.OrderStatusCancelled)
}

// --- payment ---

func (f *StorefrontFacade) CreatePaymentOrder(ctx context.Context, amount int64) (*payment.GatewayOrder, error) {
	return f.gateway.CreateOrder(ctx, amount)
}

func (f *StorefrontFacade) VerifyPayment(gatewayOrderID, paymentID, signature string) bool {
	return f.gateway.VerifySignature(gatewayOrderID, paymentID, signature)
}

// --- assistant ---

// Chat answers a storefront question with the current menu as context.
func (f *StorefrontFacade) Chat(ctx context.Context, message string) (string, error) {
	products, err := f.catalog.List(ctx)
	if err != nil {
		return "", err
	}

	var menu strings.Builder
	for _, p := range products {
		fmt.Fprintf(&menu, "- %s (%s, ₹%d)\n", p.Name, p.Category, p.Price)
	}

	prompt := fmt.Sprintf(
		"You are a friendly chef assistant for a food ordering app. Today's menu:\n%s\nCustomer: %s",
		menu.String(), message,
	)
	return f.assistant.Generate(ctx, prompt)
}
