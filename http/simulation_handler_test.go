package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auction-valuator/domain"
	"auction-valuator/repository"
	"auction-valuator/service"
)

func newTestHandler() *SimulationHandler {
	simulations := service.NewSimulationService(
		repository.NewSimulationRepositoryMemory(),
		repository.NewMockCache(),
		zerolog.Nop(),
	)
	return NewSimulationHandler(simulations, zerolog.Nop())
}

func postSimulation(t *testing.T, handler *SimulationHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/simulate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Simulate(w, req)
	return w
}

func TestSimulateHandler_OK(t *testing.T) {
	handler := newTestHandler()

	body, err := json.Marshal(domain.DefaultSimulationInput())
	require.NoError(t, err)

	w := postSimulation(t, handler, body)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.SimulationResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Greater(t, result.Sale.NetProfit, 0.0)
	assert.True(t, result.CashFlow.Reconciled)
}

func TestSimulateHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/simulate", nil)
	w := httptest.NewRecorder()
	handler.Simulate(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSimulateHandler_BadJSON(t *testing.T) {
	handler := newTestHandler()

	w := postSimulation(t, handler, []byte(`{invalid-json}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateHandler_InvalidInput(t *testing.T) {
	handler := newTestHandler()

	input := domain.DefaultSimulationInput()
	input.BidPrice = -1
	body, err := json.Marshal(input)
	require.NoError(t, err)

	w := postSimulation(t, handler, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateHandler_RequiresJSONContentType(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/simulate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	handler.Simulate(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
