package handler

import (
	"encoding/json"
	"net/http"

	"gctrack/internal/core/model"
	"gctrack/internal/core/service"
	"gctrack/internal/core/util"
)

type GeozoneHandler struct {
	geozoneService service.GeozoneService
}

func NewGeozoneHandler(geozoneService service.GeozoneService) *GeozoneHandler {
	return &GeozoneHandler{
		geozoneService: geozoneService,
	}
}

type createGeozoneRequest struct {
	AccountID   string  `json:"accountId"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	RadiusM     float64 `json:"radiusM"`
}

func (h *GeozoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGeozoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	zone := &model.Geozone{
		ID:          util.GenerateID(),
		AccountID:   req.AccountID,
		Description: req.Description,
		Center:      model.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude},
		RadiusM:     req.RadiusM,
	}
	if err := h.geozoneService.CreateGeozone(zone); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(zone)
}

func (h *GeozoneHandler) GetGeozones(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		http.Error(w, "Account ID required", http.StatusBadRequest)
		return
	}

	zones, err := h.geozoneService.GetAccountGeozones(accountID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(zones)
}
