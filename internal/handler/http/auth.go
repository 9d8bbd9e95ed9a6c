package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.recordAuth("register", metrics.OutcomeFailure)
			utils.WriteError(w, msgCredentialsRequired, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			h.recordAuth("register", metrics.OutcomeFailure)
			utils.WriteError(w, msgEmailAlreadyRegistered, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.recordAuth("register", metrics.OutcomeError)
			utils.WriteError(w, msgInternal, http.StatusInternalServerError)
			return
		}
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	h.recordAuth("register", metrics.OutcomeSuccess)
	utils.WriteJSON(w, models.AuthResponse{OK: true, User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	log.Debug().Str("email", creds.Email).Msg("login attempt")

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.recordAuth("login", metrics.OutcomeFailure)
			utils.WriteError(w, msgCredentialsRequired, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("no user was found/wrong password")
			h.recordAuth("login", metrics.OutcomeFailure)
			utils.WriteError(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.recordAuth("login", metrics.OutcomeError)
			utils.WriteError(w, msgInternal, http.StatusInternalServerError)
			return
		}
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully logged in")
	h.recordAuth("login", metrics.OutcomeSuccess)
	utils.WriteJSON(w, models.AuthResponse{OK: true, User: user}, http.StatusOK)
}

// logout clears the session cookie whether or not a session exists.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.clear(w)
	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// startSession issues a token for user and sets the session cookie. On
// failure it writes a 500 response and returns false.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, msgInternal, http.StatusInternalServerError)
		return false
	}

	h.sessions.set(w, token)
	return true
}

func (h *Handler) recordAuth(action, outcome string) {
	if h.metrics == nil {
		return
	}
	h.metrics.AuthAttemptsTotal.WithLabelValues(action, outcome).Inc()
}
