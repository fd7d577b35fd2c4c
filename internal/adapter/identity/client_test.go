package identity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestVerify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tokeninfo" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("id_token") != "good-token" {
			t.Errorf("missing id token")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"alice@example.com","name":"Alice","picture":"a.png"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, discardLogger())
	ident, err := client.Verify(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ident.Email != "alice@example.com" || ident.Name != "Alice" {
		t.Fatalf("unexpected identity %+v", ident)
	}
}

func TestVerifyRejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, discardLogger())
	if _, err := client.Verify(context.Background(), "bad-token"); !errors.Is(err, ErrTokenRejected) {
		t.Fatalf("expected ErrTokenRejected, got %v", err)
	}
}

func TestVerifyRequiresEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Nameless"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, discardLogger())
	if _, err := client.Verify(context.Background(), "token"); !errors.Is(err, ErrTokenRejected) {
		t.Fatalf("expected ErrTokenRejected for tokens without email, got %v", err)
	}
}
