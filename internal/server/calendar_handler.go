package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/calendar"
	"github.com/appdate/appdate/internal/store"
)

// CalendarHandler serves the calendar display models. It holds the single
// view-controller state (the currently displayed month), guarded by a mutex
// since navigation requests may arrive concurrently.
type CalendarHandler struct {
	repo store.EventRepository
	view *calendar.View
	log  *zerolog.Logger

	mu sync.Mutex
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(repo store.EventRepository, view *calendar.View, log *zerolog.Logger) *CalendarHandler {
	return &CalendarHandler{
		repo: repo,
		view: view,
		log:  log,
	}
}

// CurrentGrid renders the grid for the currently displayed month.
func (h *CalendarHandler) CurrentGrid(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, func() {})
}

// PrevMonth navigates one month back and renders.
func (h *CalendarHandler) PrevMonth(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, h.view.PrevMonth)
}

// NextMonth navigates one month forward and renders.
func (h *CalendarHandler) NextMonth(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, h.view.NextMonth)
}

// GoToToday resets the view to the real current month and renders.
func (h *CalendarHandler) GoToToday(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, h.view.Today)
}

// GoToDate jumps to the month containing the requested date and reports the
// cell to highlight. A day outside the rebuilt grid is reported as a message
// alongside the grid, not a failure.
func (h *CalendarHandler) GoToDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" {
		http.Error(w, `{"status":"error","message":"Select a date to go to."}`, http.StatusBadRequest)
		return
	}

	events, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list events")
		http.Error(w, `{"status":"error","message":"Failed to load events"}`, http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	grid, highlight, err := h.view.GoToDate(req.Date, events)
	h.mu.Unlock()

	if err != nil && !errors.Is(err, calendar.ErrDayNotVisible) {
		http.Error(w, `{"status":"error","message":"Invalid date format"}`, http.StatusBadRequest)
		return
	}

	resp := map[string]interface{}{
		"status":    "success",
		"grid":      grid,
		"highlight": highlight,
	}
	if errors.Is(err, calendar.ErrDayNotVisible) {
		resp["message"] = "The selected day is not visible in this month view."
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GridFor renders the grid for an explicit (year, month) without touching
// the view state.
func (h *CalendarHandler) GridFor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, _ := strconv.Atoi(vars["year"])
	month, _ := strconv.Atoi(vars["month"])
	if month < 1 || month > 12 {
		http.Error(w, `{"status":"error","message":"Invalid month"}`, http.StatusBadRequest)
		return
	}

	events, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list events")
		http.Error(w, `{"status":"error","message":"Failed to load events"}`, http.StatusInternalServerError)
		return
	}

	grid := calendar.BuildGrid(year, time.Month(month), time.Now(), events)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"grid":   grid,
	})
}

// UpcomingEvents serves the sorted upcoming-events projection.
func (h *CalendarHandler) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list events")
		http.Error(w, `{"status":"error","message":"Failed to load events"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "success",
		"upcoming": calendar.Upcoming(events),
	})
}

func (h *CalendarHandler) renderView(w http.ResponseWriter, r *http.Request, navigate func()) {
	events, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list events")
		http.Error(w, `{"status":"error","message":"Failed to load events"}`, http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	navigate()
	grid := h.view.Render(events)
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"grid":   grid,
	})
}
