package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAccessMiddleware_RejectsMissingCode(t *testing.T) {
	handler := AccessMiddleware("investimento", okHandler())

	req := httptest.NewRequest(http.MethodPost, "/simulate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccessMiddleware_RejectsWrongCode(t *testing.T) {
	handler := AccessMiddleware("investimento", okHandler())

	req := httptest.NewRequest(http.MethodPost, "/simulate", nil)
	req.Header.Set(AccessHeader, "guess")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccessMiddleware_AcceptsCorrectCode(t *testing.T) {
	handler := AccessMiddleware("investimento", okHandler())

	req := httptest.NewRequest(http.MethodPost, "/simulate", nil)
	req.Header.Set(AccessHeader, "investimento")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessMiddleware_EmptyCodeDisablesGate(t *testing.T) {
	handler := AccessMiddleware("", okHandler())

	req := httptest.NewRequest(http.MethodPost, "/simulate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
