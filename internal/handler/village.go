package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/logger"
	"github.com/aldermoor/villageforge/internal/simulation"
)

// PopulationRequest carries the demographic breakdown for a new village.
type PopulationRequest struct {
	Total     int     `json:"total" validate:"required,gt=0"`
	Children  int     `json:"children" validate:"gte=0"`
	Adults    int     `json:"adults" validate:"gte=0"`
	Elderly   int     `json:"elderly" validate:"gte=0"`
	BirthRate float64 `json:"birth_rate" validate:"gte=0"`
	DeathRate float64 `json:"death_rate" validate:"gte=0"`
}

// CreateVillageRequest represents the expected body for founding a village
type CreateVillageRequest struct {
	Name            string             `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Location        string             `json:"location" validate:"required,location"`
	Population      PopulationRequest  `json:"population" validate:"required"`
	StartingAmounts map[string]float64 `json:"starting_amounts"`
}

// CreateVillageResponse returns the newly founded village
type CreateVillageResponse struct {
	Message string         `json:"message"`
	Village domain.Village `json:"village"`
}

// ListVillagesResponse returns the known village IDs
type ListVillagesResponse struct {
	Villages []string `json:"villages"`
	Count    int      `json:"count"`
}

// HandleCreateVillage founds a new village from the supplied configuration
func HandleCreateVillage(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateVillageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create village"); err != nil {
			return
		}

		LogRequestFields(log, "name", req.Name, "location", req.Location, "population", req.Population.Total)

		starting := make(map[domain.ResourceType]float64, len(req.StartingAmounts))
		for name, amount := range req.StartingAmounts {
			starting[domain.ResourceType(name)] = amount
		}

		village, err := simService.CreateVillage(r.Context(), domain.VillageConfig{
			Name:     req.Name,
			Location: req.Location,
			Population: domain.Population{
				Total:     req.Population.Total,
				Children:  req.Population.Children,
				Adults:    req.Population.Adults,
				Elderly:   req.Population.Elderly,
				BirthRate: req.Population.BirthRate,
				DeathRate: req.Population.DeathRate,
			},
			StartingAmounts: starting,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateVillageFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, CreateVillageResponse{
			Message: MsgVillageCreatedSuccess,
			Village: village,
		})
	}
}

// HandleListVillages lists the IDs of all known villages
func HandleListVillages(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := simService.ListVillages(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListVillagesFailed, err)
			return
		}
		if ids == nil {
			ids = []string{}
		}

		respondJSON(w, http.StatusOK, ListVillagesResponse{
			Villages: ids,
			Count:    len(ids),
		})
	}
}

// HandleGetVillage returns the full state of one village
func HandleGetVillage(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		villageID := chi.URLParam(r, "villageID")

		village, err := simService.GetVillage(r.Context(), villageID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetVillageFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, village)
	}
}

// HandleDeleteVillage removes a village and its records
func HandleDeleteVillage(simService simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		villageID := chi.URLParam(r, "villageID")

		if err := simService.DeleteVillage(r.Context(), villageID); err != nil {
			respondServiceError(w, r, ErrMsgDeleteVillageFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgVillageDeletedSuccess})
	}
}
