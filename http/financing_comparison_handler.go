package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"auction-valuator/domain"
	"auction-valuator/service"
)

type FinancingComparisonHandler struct {
	service *service.FinancingComparisonService
	log     zerolog.Logger
}

func NewFinancingComparisonHandler(service *service.FinancingComparisonService, log zerolog.Logger) *FinancingComparisonHandler {
	return &FinancingComparisonHandler{service: service, log: log}
}

func (h *FinancingComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Compare(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log.Debug().Err(err).Msg("failed to write comparison response")
	}
}
