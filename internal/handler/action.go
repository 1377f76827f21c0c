package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/logger"
	"github.com/aldermoor/villageforge/internal/simulation"
)

// SubmitActionRequest represents the expected body of a player action.
// Only the fields matching the action type need to be set.
type SubmitActionRequest struct {
	Type string `json:"type" validate:"required,oneof=trade choice build assign_workers"`

	// trade
	RouteID string `json:"route_id,omitempty"`

	// choice
	EventID  string `json:"event_id,omitempty"`
	ChoiceID string `json:"choice_id,omitempty"`

	// build
	Building *domain.Building         `json:"building,omitempty"`
	Costs    []domain.TransactionCost `json:"costs,omitempty"`

	// assign_workers
	BuildingID string          `json:"building_id,omitempty"`
	Workers    []domain.Worker `json:"workers,omitempty"`
}

// HandleSubmitAction applies one player action to a village.
// Build actions that fail affordability checks come back as a validation
// report with HTTP 200: the rejection is part of the game, not a transport
// error.
func HandleSubmitAction(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		villageID := chi.URLParam(r, "villageID")

		var req SubmitActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit action"); err != nil {
			return
		}

		LogRequestFields(log, "village_id", villageID, "action", req.Type)

		result, err := simService.SubmitAction(r.Context(), villageID, simulation.Action{
			Type:       req.Type,
			RouteID:    req.RouteID,
			EventID:    req.EventID,
			ChoiceID:   req.ChoiceID,
			Building:   req.Building,
			Costs:      req.Costs,
			BuildingID: req.BuildingID,
			Workers:    req.Workers,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgSubmitActionFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
