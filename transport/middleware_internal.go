package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

// InternalMiddleware checks for the static service API key in the header.
// These routes are operational surfaces (sweep trigger, producer contract),
// never exposed to tenant traffic.
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get("Authorization") != "Bearer "+apiKey {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
