package handler

import (
	"encoding/json"
	"net/http"

	"gctrack/internal/core/service"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	deviceID := r.URL.Query().Get("deviceId")
	if accountID == "" || deviceID == "" {
		http.Error(w, "Account and device ID required", http.StatusBadRequest)
		return
	}

	events, err := h.eventService.GetDeviceEvents(accountID, deviceID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}

func (h *EventHandler) GetLatestEvent(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	deviceID := r.URL.Query().Get("deviceId")
	if accountID == "" || deviceID == "" {
		http.Error(w, "Account and device ID required", http.StatusBadRequest)
		return
	}

	event, err := h.eventService.GetLatestEvent(accountID, deviceID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if event == nil {
		http.Error(w, "No event found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event)
}
