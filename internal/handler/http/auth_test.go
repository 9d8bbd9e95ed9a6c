// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func doRequest(h *Handler, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: config.DefaultSessionCookieName, Value: value}
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		registerErr error
		tokenErr    error
		wantStatus  int
		wantBody    string
		wantCookie  bool
	}{
		{
			name:       "success",
			body:       `{"email":"new@example.com","password":"secret"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `{"ok":true,"user":{"id":7,"email":"new@example.com"}}`,
			wantCookie: true,
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid JSON body"}`,
		},
		{
			name:        "missing password",
			body:        `{"email":"new@example.com"}`,
			registerErr: service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantBody:    `{"error":"Email and password are required"}`,
		},
		{
			name:        "duplicate email",
			body:        `{"email":"demo@example.com","password":"x"}`,
			registerErr: store.ErrEmailAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantBody:    `{"error":"Email is already registered"}`,
		},
		{
			name:        "storage failure",
			body:        `{"email":"new@example.com","password":"x"}`,
			registerErr: errors.New("db down"),
			wantStatus:  http.StatusInternalServerError,
			wantBody:    `{"error":"Internal server error"}`,
		},
		{
			name:       "token failure",
			body:       `{"email":"new@example.com","password":"x"}`,
			tokenErr:   service.ErrTokenCreationFailed,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
					if tt.registerErr != nil {
						return models.User{}, tt.registerErr
					}
					return models.User{ID: 7, Email: creds.Email, PasswordHash: "hash"}, nil
				},
				createTokenFn: func(context.Context, models.User) (string, error) {
					return "signed-token", tt.tokenErr
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := doRequest(h, http.MethodPost, "/api/auth/register", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if tt.wantCookie {
				c := responseCookie(t, rec)
				assert.Equal(t, "signed-token", c.Value)
			} else {
				assert.Empty(t, rec.Result().Cookies())
			}
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
		wantBody   string
		wantCookie bool
	}{
		{
			name:       "success",
			body:       `{"email":"demo@example.com","password":"password123"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true,"user":{"id":7,"email":"demo@example.com"}}`,
			wantCookie: true,
		},
		{
			name:       "missing fields",
			body:       `{}`,
			loginErr:   service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email and password are required"}`,
		},
		{
			name:       "wrong password",
			body:       `{"email":"demo@example.com","password":"nope"}`,
			loginErr:   service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid email or password"}`,
		},
		{
			name:       "unexpected error",
			body:       `{"email":"demo@example.com","password":"x"}`,
			loginErr:   store.ErrStorageUnavailable,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid JSON body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
					if tt.loginErr != nil {
						return models.User{}, tt.loginErr
					}
					return models.User{ID: 7, Email: creds.Email}, nil
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := doRequest(h, http.MethodPost, "/api/auth/login", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantCookie, len(rec.Result().Cookies()) == 1)
		})
	}
}

func TestLogin_RecordsAuthMetrics(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			if creds.Password != "right" {
				return models.User{}, service.ErrInvalidCredentials
			}
			return testUser, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth}, WithMetrics(m))

	doRequest(h, http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"right"}`, nil)
	doRequest(h, http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"wrong"}`, nil)
	doRequest(h, http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"wrong"}`, nil)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.AuthAttemptsTotal.WithLabelValues("login", metrics.OutcomeSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.AuthAttemptsTotal.WithLabelValues("login", metrics.OutcomeFailure)))
}

// ─────────────────────────────────────────────
// logout / me
// ─────────────────────────────────────────────

func TestLogout_ClearsCookieWithoutSession(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: authAs(testUser)})

	rec := doRequest(h, http.MethodPost, "/api/auth/logout", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	c := responseCookie(t, rec)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestMe(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: authAs(testUser)})

	t.Run("authenticated", func(t *testing.T) {
		rec := doRequest(h, http.MethodGet, "/api/auth/me", "", sessionCookie("valid"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user":{"id":7,"email":"demo@example.com"}}`, rec.Body.String())
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := doRequest(h, http.MethodGet, "/api/auth/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("invalid token keeps cookie", func(t *testing.T) {
		rec := doRequest(h, http.MethodGet, "/api/auth/me", "", sessionCookie("forged"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestMe_WithoutMiddleware(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	rec := httptest.NewRecorder()

	h.me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
