package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/models"
	"github.com/appdate/appdate/internal/notes"
	"github.com/appdate/appdate/internal/store"
)

// EventHandler handles HTTP requests related to events
// and interacts with the EventRepository.
type EventHandler struct {
	repo      store.EventRepository
	autosaver *notes.Autosaver
	log       *zerolog.Logger
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(repo store.EventRepository, autosaver *notes.Autosaver, log *zerolog.Logger) *EventHandler {
	return &EventHandler{
		repo:      repo,
		autosaver: autosaver,
		log:       log,
	}
}

// ListEvents returns the full collection in insertion order
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list events")
		http.Error(w, `{"status":"error","message":"Failed to list events"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"events": events,
	})
}

// CreateEvent handles the creation of a new event
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, `{"status":"error","message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	event, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.respondStoreError(w, err, "Failed to create event")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"event":  event,
	})
}

// UpdateEvent updates an existing event, preserving its ID
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var req models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, `{"status":"error","message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	event, err := h.repo.Update(r.Context(), id, &req)
	if err != nil {
		h.respondStoreError(w, err, "Failed to update event")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"event":  event,
	})
}

// DeleteEvent removes an event. Deleting an absent ID succeeds.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Str("event_id", id).Msg("Failed to delete event")
		http.Error(w, `{"status":"error","message":"Failed to delete event"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SaveNotes schedules a debounced autosave of the notes document. The write
// lands after the debounce interval, or on flush at shutdown.
func (h *EventHandler) SaveNotes(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var req models.NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, `{"status":"error","message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	h.autosaver.Schedule(id, req.Notes)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "scheduled",
	})
}

func (h *EventHandler) respondStoreError(w http.ResponseWriter, err error, fallback string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "error",
			"message": verr.Message,
		})
	case errors.Is(err, store.ErrEventNotFound):
		http.Error(w, `{"status":"error","message":"Event not found"}`, http.StatusNotFound)
	default:
		h.log.Error().Err(err).Msg(fallback)
		http.Error(w, `{"status":"error","message":"`+fallback+`"}`, http.StatusInternalServerError)
	}
}
