package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"productcatalog/pkg/logger"
)

func TestRecoverer(t *testing.T) {
	log := logger.New("error")

	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected failure in handler")
	})

	handler := Recoverer(log)(panicHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}

	// Callers get the generic message, never the panic detail
	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["message"] != "Internal server error" {
		t.Errorf("message = %s, want 'Internal server error'", response["message"])
	}
}

func TestRecoverer_PassThrough(t *testing.T) {
	log := logger.New("error")

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	handler := Recoverer(log)(okHandler)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
}
