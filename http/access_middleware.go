package http

import (
	"crypto/subtle"
	"net/http"
)

// AccessHeader carries the shared access code that gates the simulator.
const AccessHeader = "X-Access-Code"

// AccessMiddleware checks the access code on every request instead of
// keeping any logged-in state in the process: each request carries its own
// proof. An empty configured code disables the gate.
func AccessMiddleware(code string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code != "" {
			provided := r.Header.Get(AccessHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(code)) != 1 {
				http.Error(w, "invalid access code", http.StatusUnauthorized)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
