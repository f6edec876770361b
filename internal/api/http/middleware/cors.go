package middleware

import (
	"net/http"
)

// CORS answers preflight requests and stamps cross-origin headers on every
// response. origin "*" allows any origin.
type CORS struct {
	origin string
}

func NewCORS(origin string) *CORS {
	if origin == "" {
		origin = "*"
	}
	return &CORS{origin: origin}
}

func (c *CORS) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", c.origin)
		if c.origin != "*" {
			h.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
