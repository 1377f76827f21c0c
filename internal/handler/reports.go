package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/simulation"
)

// HistoryResponse returns a village's chronicle of resolved events
type HistoryResponse struct {
	VillageID string                   `json:"village_id"`
	Events    []domain.HistoricalEvent `json:"events"`
	Count     int                      `json:"count"`
}

// CrisesResponse returns the active resource crises for a village
type CrisesResponse struct {
	VillageID string                  `json:"village_id"`
	Crises    []domain.ResourceCrisis `json:"crises"`
	Count     int                     `json:"count"`
}

// TradeOpportunitiesResponse returns the scored trade routes for a village
type TradeOpportunitiesResponse struct {
	VillageID     string                    `json:"village_id"`
	Opportunities []domain.TradeOpportunity `json:"opportunities"`
	Count         int                       `json:"count"`
}

// HandleGetHistory returns the most recent resolved events for a village
func HandleGetHistory(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		villageID := chi.URLParam(r, "villageID")

		limitStr := GetOptionalQueryParam(r, "limit", "50")
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}

		events, err := simService.GetHistory(r.Context(), villageID, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetHistoryFailed, err)
			return
		}
		if events == nil {
			events = []domain.HistoricalEvent{}
		}

		respondJSON(w, http.StatusOK, HistoryResponse{
			VillageID: villageID,
			Events:    events,
			Count:     len(events),
		})
	}
}

// HandleGetCrises runs crisis detection against a village's current stocks
func HandleGetCrises(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		villageID := chi.URLParam(r, "villageID")

		crises, err := simService.GetCrises(r.Context(), villageID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetCrisesFailed, err)
			return
		}
		if crises == nil {
			crises = []domain.ResourceCrisis{}
		}

		respondJSON(w, http.StatusOK, CrisesResponse{
			VillageID: villageID,
			Crises:    crises,
			Count:     len(crises),
		})
	}
}

// HandleGetTradeOpportunities scores a village's trade routes
func HandleGetTradeOpportunities(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		villageID := chi.URLParam(r, "villageID")

		opportunities, err := simService.GetTradeOpportunities(r.Context(), villageID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetTradeOppsFailed, err)
			return
		}
		if opportunities == nil {
			opportunities = []domain.TradeOpportunity{}
		}

		respondJSON(w, http.StatusOK, TradeOpportunitiesResponse{
			VillageID:     villageID,
			Opportunities: opportunities,
			Count:         len(opportunities),
		})
	}
}

// HandleGetOptimization computes a distribution plan for a village's stocks
func HandleGetOptimization(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		villageID := chi.URLParam(r, "villageID")

		plan, err := simService.OptimizeDistribution(r.Context(), villageID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetOptimizationFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, plan)
	}
}
