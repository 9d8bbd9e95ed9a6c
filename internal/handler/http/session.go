// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
)

// sessionCookies stores the session token in an HttpOnly cookie.
//
// The cookie has no Max-Age or Expires attribute, so it lives for the
// browser session. Secure is only set in production so that the server can
// be used over plain HTTP during development.
type sessionCookies struct {
	name   string
	secure bool
}

func newSessionCookies(cfg config.App) *sessionCookies {
	name := cfg.SessionCookieName
	if name == "" {
		name = config.DefaultSessionCookieName
	}

	return &sessionCookies{
		name:   name,
		secure: cfg.IsProduction(),
	}
}

// set writes token into the session cookie.
func (s *sessionCookies) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, s.cookie(token, 0))
}

// clear expires the session cookie. It is safe to call without a session.
func (s *sessionCookies) clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie("", -1))
}

// read returns the session token carried by r, if any.
func (s *sessionCookies) read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

func (s *sessionCookies) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
