package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/server/http/dto"
	"github.com/foodkart/foodkart/internal/server/http/middleware"
	"github.com/foodkart/foodkart/internal/test/facadestub"
	"github.com/foodkart/foodkart/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	facade := &facadestub.FacadeStub{}
	handler := NewAuthHandler(facade)

	body, _ := json.Marshal(dto.RegisterRequest{Name: "Alice", Email: "a@b.com", Password: "secret1", Role: "admin"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected auth header, got %q", got)
	}

	var user dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// the role from the public payload must be ignored
	if user.Role != string(model.RoleUser) {
		t.Fatalf("public signup must create customer accounts, got %q", user.Role)
	}

	resp = performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, []byte("{broken"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.Code)
	}

	facade.RegisterFn = func(context.Context, string, string, string, model.Role) (*model.User, string, error) {
		return nil, "", domainErrors.ErrAlreadyExists
	}
	resp = performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d", resp.Code)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	facade := &facadestub.FacadeStub{}
	handler := NewAuthHandler(facade)

	body, _ := json.Marshal(dto.LoginRequest{Email: "a@b.com", Password: "secret1"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	facade.AuthenticateFn = func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	resp = performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthHandlerGoogle(t *testing.T) {
	var gotToken string
	facade := &facadestub.FacadeStub{
		FederatedLoginFn: func(_ context.Context, token string) (*model.User, string, error) {
			gotToken = token
			return &model.User{ID: 5, Email: "alice@example.com", Role: model.RoleUser}, "token", nil
		},
	}
	handler := NewAuthHandler(facade)

	body, _ := json.Marshal(dto.FederatedLoginRequest{Token: "provider-token"})
	resp := performRequest(t, http.MethodPost, "/google", "/google", handler.Google, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotToken != "provider-token" {
		t.Fatalf("expected provider token forwarded, got %q", gotToken)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected auth header, got %q", got)
	}

	empty, _ := json.Marshal(dto.FederatedLoginRequest{})
	resp = performRequest(t, http.MethodPost, "/google", "/google", handler.Google, nil, empty)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing token, got %d", resp.Code)
	}

	facade.FederatedLoginFn = func(context.Context, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	resp = performRequest(t, http.MethodPost, "/google", "/google", handler.Google, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for rejected token, got %d", resp.Code)
	}
}

func TestCouponHandlerValidate(t *testing.T) {
	facade := &facadestub.FacadeStub{
		ValidateCouponFn: func(_ context.Context, code string, subtotal int64) (*model.Discount, error) {
			return &model.Discount{Code: "WELCOME50", Amount: 100, Type: model.DiscountPercentage}, nil
		},
	}
	handler := NewCouponHandler(facade)

	body, _ := json.Marshal(dto.ValidateCouponRequest{Code: "welcome50", OrderTotal: 300})
	resp := performRequest(t, http.MethodPost, "/validate", "/validate", handler.Validate, asUser(1), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var discount dto.DiscountResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &discount); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if discount.Discount != 100 || discount.Code != "WELCOME50" {
		t.Fatalf("unexpected payload: %+v", discount)
	}

	facade.ValidateCouponFn = func(context.Context, string, int64) (*model.Discount, error) {
		return nil, &domainErrors.MinOrderValueError{Required: 200}
	}
	resp = performRequest(t, http.MethodPost, "/validate", "/validate", handler.Validate, asUser(1), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("minimum order value of 200")) {
		t.Fatalf("expected threshold in message, got %s", resp.Body.String())
	}

	facade.ValidateCouponFn = func(context.Context, string, int64) (*model.Discount, error) {
		return nil, domainErrors.ErrNotFound
	}
	resp = performRequest(t, http.MethodPost, "/validate", "/validate", handler.Validate, asUser(1), body)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown code, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	var gotUserID int64
	var gotInput usecase.CheckoutInput
	facade := &facadestub.FacadeStub{
		CheckoutFn: func(_ context.Context, userID int64, input usecase.CheckoutInput) (*model.Order, error) {
			gotUserID = userID
			gotInput = input
			return &model.Order{ID: 10, UserID: userID, Status: model.OrderStatusPlaced, TotalAmount: 518}, nil
		},
	}
	handler := NewOrderHandler(facade)

	body, _ := json.Marshal(dto.CheckoutRequest{
		Items:           []dto.CheckoutItemRequest{{ProductID: 1, Quantity: 2}},
		ShippingAddress: "12 MG Road, Bengaluru",
		PaymentMethod:   "COD",
		CouponCode:      "FLAT50",
		Total:           518,
	})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, asUser(7), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if gotUserID != 7 {
		t.Fatalf("expected caller id forwarded, got %d", gotUserID)
	}
	if gotInput.CouponCode != "FLAT50" || gotInput.DeclaredTotal != 518 || len(gotInput.Items) != 1 {
		t.Fatalf("unexpected input: %+v", gotInput)
	}

	facade.CheckoutFn = func(context.Context, int64, usecase.CheckoutInput) (*model.Order, error) {
		return nil, domainErrors.ErrTotalMismatch
	}
	resp = performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, asUser(7), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for total mismatch, got %d", resp.Code)
	}

	facade.CheckoutFn = func(context.Context, int64, usecase.CheckoutInput) (*model.Order, error) {
		return nil, domainErrors.ErrCouponLimitReached
	}
	resp = performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, asUser(7), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for exhausted coupon, got %d", resp.Code)
	}
}

func TestOrderHandlerCreateForwardsReceipt(t *testing.T) {
	var gotInput usecase.CheckoutInput
	facade := &facadestub.FacadeStub{
		CheckoutFn: func(_ context.Context, userID int64, input usecase.CheckoutInput) (*model.Order, error) {
			gotInput = input
			return &model.Order{ID: 11, UserID: userID, Status: model.OrderStatusPlaced, IsPaid: true}, nil
		},
	}
	handler := NewOrderHandler(facade)

	body, _ := json.Marshal(dto.CheckoutRequest{
		Items:           []dto.CheckoutItemRequest{{ProductID: 1, Quantity: 1}},
		ShippingAddress: "12 MG Road, Bengaluru",
		PaymentMethod:   "Online",
		PaymentResult: &dto.PaymentResultRequest{
			ID:        "pay_1",
			Status:    "captured",
			OrderID:   "order_1",
			Signature: "sig",
		},
	})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, asUser(7), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if gotInput.Payment == nil || gotInput.Payment.ID != "pay_1" {
		t.Fatalf("expected receipt forwarded, got %+v", gotInput.Payment)
	}
	if gotInput.PaymentOrderID != "order_1" || gotInput.PaymentSignature != "sig" {
		t.Fatalf("expected signature fields forwarded, got %q %q", gotInput.PaymentOrderID, gotInput.PaymentSignature)
	}

	facade.CheckoutFn = func(context.Context, int64, usecase.CheckoutInput) (*model.Order, error) {
		return nil, domainErrors.ErrPaymentNotVerified
	}
	resp = performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, asUser(7), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unverified receipt, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	facade := &facadestub.FacadeStub{}
	handler := NewOrderHandler(facade)

	body, _ := json.Marshal(dto.UpdateOrderStatusRequest{Status: "Preparing"})
	resp := performRequest(t, http.MethodPut, "/orders/:id/status", "/orders/5/status", handler.UpdateStatus, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	facade.UpdateOrderStatusFn = func(context.Context, int64, model.OrderStatus) (*model.Order, error) {
		return nil, domainErrors.ErrInvalidTransition
	}
	resp = performRequest(t, http.MethodPut, "/orders/:id/status", "/orders/5/status", handler.UpdateStatus, nil, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for rejected transition, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPut, "/orders/:id/status", "/orders/nan/status", handler.UpdateStatus, nil, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", resp.Code)
	}
}

func TestOrderHandlerStats(t *testing.T) {
	facade := &facadestub.FacadeStub{
		StatsFn: func(context.Context) (*model.AdminStats, error) {
			return &model.AdminStats{
				TotalOrders: 12, TotalRevenue: 5400, PendingOrders: 3, CompletedOrders: 8,
				Daily: []model.DailyStat{{Date: "2025-06-01", Orders: 5, Revenue: 2500}},
			}, nil
		},
	}
	handler := NewOrderHandler(facade)

	resp := performRequest(t, http.MethodGet, "/stats", "/stats", handler.Stats, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var stats dto.StatsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.TotalRevenue != 5400 || len(stats.DailyStats) != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestProductHandlerCRUD(t *testing.T) {
	facade := &facadestub.FacadeStub{}
	handler := NewProductHandler(facade)

	body, _ := json.Marshal(dto.ProductRequest{Name: "Biryani", Description: "d", Price: 250, Image: "b.jpg", Category: "Biryani"})
	resp := performRequest(t, http.MethodPost, "/products", "/products", handler.Create, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	facade.CreateProductFn = func(context.Context, *model.Product) (*model.Product, error) {
		return nil, domainErrors.ErrInvalidProduct
	}
	resp = performRequest(t, http.MethodPost, "/products", "/products", handler.Create, nil, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	facade.DeleteProductFn = func(context.Context, int64) error { return domainErrors.ErrNotFound }
	resp = performRequest(t, http.MethodDelete, "/products/:id", "/products/9", handler.Delete, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	facade.ProductsFn = func(context.Context) ([]model.Product, error) { return nil, errors.New("db down") }
	resp = performRequest(t, http.MethodGet, "/products", "/products", handler.List, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestPaymentHandler(t *testing.T) {
	facade := &facadestub.FacadeStub{}
	handler := NewPaymentHandler(facade)

	body, _ := json.Marshal(dto.CreatePaymentOrderRequest{Amount: 518})
	resp := performRequest(t, http.MethodPost, "/create-order", "/create-order", handler.CreateOrder, asUser(1), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var order dto.GatewayOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if order.Amount != 51800 {
		t.Fatalf("expected paise amount, got %d", order.Amount)
	}

	badBody, _ := json.Marshal(dto.CreatePaymentOrderRequest{Amount: 0})
	resp = performRequest(t, http.MethodPost, "/create-order", "/create-order", handler.CreateOrder, asUser(1), badBody)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero amount, got %d", resp.Code)
	}

	verifyBody, _ := json.Marshal(dto.VerifyPaymentRequest{OrderID: "o", PaymentID: "p", Signature: "s"})
	resp = performRequest(t, http.MethodPost, "/verify", "/verify", handler.Verify, asUser(1), verifyBody)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	facade.VerifyPaymentFn = func(string, string, string) bool { return false }
	resp = performRequest(t, http.MethodPost, "/verify", "/verify", handler.Verify, asUser(1), verifyBody)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad signature, got %d", resp.Code)
	}
}

func TestAssistantHandlerChat(t *testing.T) {
	facade := &facadestub.FacadeStub{
		ChatFn: func(_ context.Context, message string) (string, error) {
			return "try the biryani", nil
		},
	}
	handler := NewAssistantHandler(facade)

	body, _ := json.Marshal(dto.ChatRequest{Message: "what should I eat?"})
	resp := performRequest(t, http.MethodPost, "/chat", "/chat", handler.Chat, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var chat dto.ChatResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &chat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if chat.Reply != "try the biryani" {
		t.Fatalf("unexpected reply %q", chat.Reply)
	}

	empty, _ := json.Marshal(dto.ChatRequest{Message: "   "})
	resp = performRequest(t, http.MethodPost, "/chat", "/chat", handler.Chat, nil, empty)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank message, got %d", resp.Code)
	}

	facade.ChatFn = func(context.Context, string) (string, error) { return "", errors.New("upstream") }
	resp = performRequest(t, http.MethodPost, "/chat", "/chat", handler.Chat, nil, body)
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
}
