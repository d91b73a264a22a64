package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"productcatalog/internal/config"
	"productcatalog/internal/models"
	"productcatalog/internal/repository"
	"productcatalog/internal/service"
	"productcatalog/pkg/logger"
)

func newTestServer(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "3000", Host: "127.0.0.1"},
		Auth: config.AuthConfig{
			Header:  "X-API-Key",
			APIKeys: []string{"12345"},
		},
		LogLevel: "error",
	}

	repo := repository.NewInMemoryProductRepository()
	svc := service.NewProductService(repo)
	log := logger.New(cfg.LogLevel)

	router := NewRouter(cfg, NewProductHandler(svc, log), NewHealthHandler(log), log)
	return router, cfg
}

func TestRouter_Welcome(t *testing.T) {
	router, cfg := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(cfg.Auth.Header, cfg.Auth.APIKeys[0])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != welcomeMessage {
		t.Errorf("body = %q, want %q", w.Body.String(), welcomeMessage)
	}
}

func TestRouter_UnauthorizedRequestsNeverReachHandlers(t *testing.T) {
	router, cfg := newTestServer(t)

	// Mutating requests without a credential must be rejected with 401
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"create", http.MethodPost, "/api/products", `{"name":"Intruder"}`},
		{"delete", http.MethodDelete, "/api/products/1", ""},
		{"list", http.MethodGet, "/api/products", ""},
		{"welcome", http.MethodGet, "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}

	// The rejected POST and DELETE must not have touched the collection
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(cfg.Auth.Header, cfg.Auth.APIKeys[0])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var page models.ProductPage
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if page.Total != 3 {
		t.Errorf("total = %d after unauthorized mutations, want untouched 3", page.Total)
	}
}

func TestRouter_StaticRoutesWinOverIDCapture(t *testing.T) {
	router, cfg := newTestServer(t)

	// "stats" must reach the stats handler, not be captured as a product id
	req := httptest.NewRequest(http.MethodGet, "/api/products/stats", nil)
	req.Header.Set(cfg.Auth.Header, cfg.Auth.APIKeys[0])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var stats models.Stats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stats.TotalProducts != 3 {
		t.Errorf("totalProducts = %d, want 3", stats.TotalProducts)
	}

	// Search with a path parameter also resolves ahead of {id}
	req = httptest.NewRequest(http.MethodGet, "/api/products/search/phone", nil)
	req.Header.Set(cfg.Auth.Header, cfg.Auth.APIKeys[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Smartphone" {
		t.Errorf("expected Smartphone match, got %v", products)
	}
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	router, cfg := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	req.Header.Set(cfg.Auth.Header, cfg.Auth.APIKeys[0])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestRouter_HealthNeedsNoCredential(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 without credential", w.Code)
	}
}
