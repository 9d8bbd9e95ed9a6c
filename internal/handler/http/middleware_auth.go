package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based sessions.
//
// It reads the session cookie, resolves it via
// [service.AuthService.CurrentUser] and stores the freshly loaded user in the
// request context with [utils.WithUser] before delegating to the next
// handler.
//
// The middleware rejects requests with HTTP 401 {"error":"Unauthorized"} when
// the cookie is absent, the token does not verify, or its user no longer
// exists. An invalid cookie is left in place.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, ok := h.sessions.read(r)
		if !ok {
			log.Debug().Err(ErrNoSessionCookie).Send()
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.CurrentUser(ctx, token)
		if err != nil {
			status, message := statusFromError(err)
			if status == http.StatusInternalServerError {
				log.Err(err).Msg("error occurred during resolving session")
			} else {
				log.Debug().Err(err).Msg("session rejected")
			}
			utils.WriteError(w, message, status)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
