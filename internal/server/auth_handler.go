package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/models"
	"github.com/appdate/appdate/internal/store"
)

// AuthHandler handles registration and login against the account store.
type AuthHandler struct {
	registrar *store.Registrar
	log       *zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(registrar *store.Registrar, log *zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		registrar: registrar,
		log:       log,
	}
}

// Register creates a new account and triggers the accounts CSV export.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, `{"status":"error","message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	account, err := h.registrar.Register(r.Context(), &req)
	if err != nil {
		h.respondAuthError(w, err, "Failed to register account")
		return
	}

	// Never echo the password back
	account.Password = ""

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"account": account,
	})
}

// Login checks credentials and returns the matching account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, `{"status":"error","message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	account, err := h.registrar.Login(r.Context(), &req)
	if err != nil {
		h.respondAuthError(w, err, "Failed to log in")
		return
	}

	account.Password = ""

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"account": account,
	})
}

func (h *AuthHandler) respondAuthError(w http.ResponseWriter, err error, fallback string) {
	var verr *store.ValidationError

	message := ""
	status := 0
	switch {
	case errors.As(err, &verr):
		message, status = verr.Message, http.StatusBadRequest
	case errors.Is(err, store.ErrPasswordMismatch):
		message, status = "Passwords do not match.", http.StatusBadRequest
	case errors.Is(err, store.ErrInvalidRTUEmail):
		message, status = "RTU email must be admin@rtu.edu.ph or a valid RTU student email in the range 2024-200001 to 2024-200999", http.StatusBadRequest
	case errors.Is(err, store.ErrDuplicateEmail):
		message, status = "An account with that email already exists.", http.StatusConflict
	case errors.Is(err, store.ErrAccountNotFound):
		message, status = "No account found with that email.", http.StatusNotFound
	case errors.Is(err, store.ErrWrongPassword):
		message, status = "Incorrect password.", http.StatusUnauthorized
	default:
		h.log.Error().Err(err).Msg(fallback)
		message, status = fallback, http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "error",
		"message": message,
	})
}
