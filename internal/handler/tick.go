package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aldermoor/villageforge/internal/logger"
	"github.com/aldermoor/villageforge/internal/simulation"
)

// TickRequest represents the optional body of a tick request. When omitted
// the simulation advances by its default step.
type TickRequest struct {
	DeltaHours float64 `json:"delta_hours" validate:"gte=0"`
}

// HandleTick advances one village's simulation by one step
func HandleTick(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		villageID := chi.URLParam(r, "villageID")

		// The body is optional: an empty body means the default step.
		var req TickRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Error("Failed to decode tick request", "error", err)
			http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
			return
		}
		if req.DeltaHours < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDeltaHours)
			return
		}

		LogRequestFields(log, "village_id", villageID, "delta_hours", req.DeltaHours)

		result, err := simService.Tick(r.Context(), villageID, req.DeltaHours)
		if err != nil {
			respondServiceError(w, r, ErrMsgTickFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
