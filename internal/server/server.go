package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/calendar"
	"github.com/appdate/appdate/internal/notes"
	"github.com/appdate/appdate/internal/store"
)

// Server is the HTTP presentation binding: it serves the display models
// (grid, upcoming list) and forwards mutations to the event store.
type Server struct {
	Server      *http.Server
	log         *zerolog.Logger
	eventAPI    *EventHandler
	calendarAPI *CalendarHandler
	authAPI     *AuthHandler
}

func New(addr string, events store.EventRepository, registrar *store.Registrar, autosaver *notes.Autosaver, log *zerolog.Logger) *Server {
	s := &Server{
		Server: &http.Server{
			Addr:         addr,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log:         log,
		eventAPI:    NewEventHandler(events, autosaver, log),
		calendarAPI: NewCalendarHandler(events, calendar.NewView(nil), log),
		authAPI:     NewAuthHandler(registrar, log),
	}

	r := mux.NewRouter()
	s.setupRoutes(r)
	s.Server.Handler = r

	return s
}

func (s *Server) setupRoutes(r *mux.Router) {
	// Use the logging middleware for all routes
	r.Use(s.loggingMiddleware)

	// Health check endpoint
	r.HandleFunc("/health", s.healthCheck).Methods("GET")

	// API v1 routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Events routes
	events := api.PathPrefix("/events").Subrouter()
	events.HandleFunc("", s.eventAPI.ListEvents).Methods("GET")
	events.HandleFunc("", s.eventAPI.CreateEvent).Methods("POST")
	events.HandleFunc("/{id}", s.eventAPI.UpdateEvent).Methods("PUT")
	events.HandleFunc("/{id}", s.eventAPI.DeleteEvent).Methods("DELETE")
	events.HandleFunc("/{id}/notes", s.eventAPI.SaveNotes).Methods("PUT")

	// Calendar view routes
	cal := api.PathPrefix("/calendar").Subrouter()
	cal.HandleFunc("", s.calendarAPI.CurrentGrid).Methods("GET")
	cal.HandleFunc("/prev", s.calendarAPI.PrevMonth).Methods("POST")
	cal.HandleFunc("/next", s.calendarAPI.NextMonth).Methods("POST")
	cal.HandleFunc("/today", s.calendarAPI.GoToToday).Methods("POST")
	cal.HandleFunc("/goto", s.calendarAPI.GoToDate).Methods("POST")
	cal.HandleFunc("/{year:[0-9]+}/{month:[0-9]+}", s.calendarAPI.GridFor).Methods("GET")

	api.HandleFunc("/upcoming", s.calendarAPI.UpcomingEvents).Methods("GET")

	// Auth routes
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", s.authAPI.Register).Methods("POST")
	auth.HandleFunc("/login", s.authAPI.Login).Methods("POST")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("address", s.Server.Addr).Msg("Starting server")
	return s.Server.ListenAndServe()
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info().Msg("Shutting down server")
	return s.Server.Shutdown(ctx)
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// loggingMiddleware logs all incoming requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Capture the status code
		rw := &responseWriter{w, http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.status).
			Dur("duration", duration).
			Msg("Request handled")
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
