package middleware

import (
	"encoding/json"
	"net/http"

	"productcatalog/internal/config"
)

// APIKeyAuth validates the shared-secret credential carried in the
// configured request header. Requests with a missing or unknown key are
// rejected with 401 before any handler runs; the header name and accepted
// values are deployment configuration, not business logic.
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(cfg.Header)

			valid := false
			if apiKey != "" {
				for _, validKey := range cfg.APIKeys {
					if apiKey == validKey {
						valid = true
						break
					}
				}
			}

			if !valid {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized, invalid API key"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
