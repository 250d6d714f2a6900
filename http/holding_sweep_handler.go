package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"auction-valuator/domain"
	"auction-valuator/service"
)

type HoldingSweepHandler struct {
	service *service.HoldingSweepService
	log     zerolog.Logger
}

func NewHoldingSweepHandler(service *service.HoldingSweepService, log zerolog.Logger) *HoldingSweepHandler {
	return &HoldingSweepHandler{service: service, log: log}
}

func (h *HoldingSweepHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.HoldingSweepInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Sweep(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log.Debug().Err(err).Msg("failed to write sweep response")
	}
}
