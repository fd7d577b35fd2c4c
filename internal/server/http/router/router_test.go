package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/foodkart/foodkart/internal/config"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/server/http/handlers"
	"github.com/foodkart/foodkart/internal/test/facadestub"
)

func newTestEngine(facade handlers.StorefrontFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:5173"}}
	return Setup(facade, cfg, logger)
}

func serve(engine *gin.Engine, method, path string, body []byte, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newTestEngine(&facadestub.FacadeStub{})

	body, _ := json.Marshal(map[string]string{"name": "Alice", "email": "a@b.com", "password": "secret1"})
	if resp := serve(engine, http.MethodPost, "/api/auth/register", body, ""); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for register, got %d", resp.Code)
	}

	google, _ := json.Marshal(map[string]string{"token": "provider-token"})
	if resp := serve(engine, http.MethodPost, "/api/auth/google", google, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for federated login, got %d", resp.Code)
	}

	if resp := serve(engine, http.MethodGet, "/api/products", nil, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for product list, got %d", resp.Code)
	}

	chat, _ := json.Marshal(map[string]string{"message": "hello"})
	if resp := serve(engine, http.MethodPost, "/api/assistant/chat", chat, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for chat, got %d", resp.Code)
	}
}

func TestSetupWithoutOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	engine := Setup(&facadestub.FacadeStub{}, &config.Config{}, logger)

	if resp := serve(engine, http.MethodGet, "/api/products", nil, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with empty origin list, got %d", resp.Code)
	}
}

func TestSetupRequiresAuth(t *testing.T) {
	engine := newTestEngine(&facadestub.FacadeStub{})

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/orders/myorders"},
		{http.MethodPost, "/api/coupons/validate"},
		{http.MethodPost, "/api/payment/create-order"},
	}
	for _, p := range paths {
		if resp := serve(engine, p.method, p.path, nil, ""); resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", p.method, p.path, resp.Code)
		}
	}

	if resp := serve(engine, http.MethodGet, "/api/auth/me", nil, "token"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for authenticated me, got %d", resp.Code)
	}
}

func TestSetupEnforcesRoles(t *testing.T) {
	role := model.RoleUser
	facade := &facadestub.FacadeStub{
		UserByIDFn: func(_ context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Role: role}, nil
		},
	}
	engine := newTestEngine(facade)

	if resp := serve(engine, http.MethodGet, "/api/orders", nil, "token"); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer listing all orders, got %d", resp.Code)
	}
	if resp := serve(engine, http.MethodGet, "/api/coupons", nil, "token"); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer listing coupons, got %d", resp.Code)
	}

	role = model.RoleAdmin
	if resp := serve(engine, http.MethodGet, "/api/orders", nil, "token"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin listing all orders, got %d", resp.Code)
	}
	if resp := serve(engine, http.MethodGet, "/api/orders/stats", nil, "token"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin stats, got %d", resp.Code)
	}

	// restaurant staff may add products but not delete them
	role = model.RoleRestaurant
	product, _ := json.Marshal(map[string]any{"name": "Naan", "description": "d", "price": 50, "image": "n.jpg", "category": "Breads"})
	if resp := serve(engine, http.MethodPost, "/api/products", product, "token"); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for staff product create, got %d", resp.Code)
	}
	if resp := serve(engine, http.MethodDelete, "/api/products/1", nil, "token"); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff product delete, got %d", resp.Code)
	}
}

var _ handlers.StorefrontFacade = (*facadestub.FacadeStub)(nil)
