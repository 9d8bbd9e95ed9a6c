package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const cookieName = config.DefaultSessionCookieName

// newE2EServer wires the real services on an in-memory SQLite store with the
// demo account seeded, the same way the server binary does at startup.
func newE2EServer(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	db, err := store.NewConnect(ctx, config.DB{DSN: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	appCfg := config.App{
		SessionSecret:  "e2e-secret",
		PasswordHasher: "sha256",
		Version:        "e2e",
	}
	services, err := service.NewServices(store.NewStorages(db, log), appCfg, models.AppBuildInfo{}, log)
	require.NoError(t, err)

	_, err = services.AuthService.SeedUser(ctx, models.Credentials{
		Email:    config.DefaultSeedEmail,
		Password: config.DefaultSeedPassword,
	})
	require.NoError(t, err)

	return NewHandler(services, appCfg, log, WithHealthChecker(db)).Init()
}

// login signs in and returns the session cookie value.
func login(t *testing.T, handler http.Handler, email, password string) string {
	t.Helper()

	result := apitest.New().
		Handler(handler).
		Post("/api/auth/login").
		JSON(map[string]string{"email": email, "password": password}).
		Expect(t).
		Status(http.StatusOK).
		CookiePresent(cookieName).
		Assert(jsonpath.Equal("$.ok", true)).
		Assert(jsonpath.Equal("$.user.email", email)).
		End()

	for _, c := range result.Response.Cookies() {
		if c.Name == cookieName {
			return c.Value
		}
	}
	t.Fatalf("no %s cookie in login response", cookieName)
	return ""
}

func TestE2E_DemoLoginMeLogout(t *testing.T) {
	handler := newE2EServer(t)

	token := login(t, handler, config.DefaultSeedEmail, config.DefaultSeedPassword)

	apitest.New().
		Handler(handler).
		Get("/api/auth/me").
		Cookie(cookieName, token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.user.email", config.DefaultSeedEmail)).
		Assert(jsonpath.Present("$.user.id")).
		Assert(jsonpath.NotPresent("$.user.passwordHash")).
		End()

	apitest.New().
		Handler(handler).
		Post("/api/auth/logout").
		Cookie(cookieName, token).
		Expect(t).
		Status(http.StatusOK).
		Body(`{"ok":true}`).
		Cookies(apitest.NewCookie(cookieName).Value("").MaxAge(-1)).
		End()

	// the browser dropped the cookie
	apitest.New().
		Handler(handler).
		Get("/api/auth/me").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"error":"Unauthorized"}`).
		End()
}

func TestE2E_WrongPassword(t *testing.T) {
	handler := newE2EServer(t)

	apitest.New().
		Handler(handler).
		Post("/api/auth/login").
		JSON(`{"email":"demo@example.com","password":"nope"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"error":"Invalid email or password"}`).
		CookieNotPresent(cookieName).
		End()
}

func TestE2E_CreateAndListGroceries(t *testing.T) {
	handler := newE2EServer(t)
	token := login(t, handler, config.DefaultSeedEmail, config.DefaultSeedPassword)

	apitest.New().
		Handler(handler).
		Post("/api/items").
		Cookie(cookieName, token).
		JSON(`{"title":"Groceries","description":"milk, eggs"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.item.title", "Groceries")).
		Assert(jsonpath.Equal("$.item.description", "milk, eggs")).
		Assert(jsonpath.Present("$.item.created_at")).
		End()

	apitest.New().
		Handler(handler).
		Post("/api/items").
		Cookie(cookieName, token).
		JSON(`{"title":"   "}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"error":"Title is required"}`).
		End()

	apitest.New().
		Handler(handler).
		Get("/api/items").
		Cookie(cookieName, token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$.items", 1)).
		Assert(jsonpath.Equal("$.items[0].title", "Groceries")).
		End()
}

func TestE2E_OwnershipIsolation(t *testing.T) {
	handler := newE2EServer(t)

	apitest.New().
		Handler(handler).
		Post("/api/auth/register").
		JSON(`{"email":"other@example.com","password":"hunter2"}`).
		Expect(t).
		Status(http.StatusCreated).
		CookiePresent(cookieName).
		End()

	demo := login(t, handler, config.DefaultSeedEmail, config.DefaultSeedPassword)
	other := login(t, handler, "other@example.com", "hunter2")

	apitest.New().
		Handler(handler).
		Post("/api/items").
		Cookie(cookieName, demo).
		JSON(`{"title":"Private"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.item.id", float64(1))).
		End()

	for _, tc := range []struct {
		method, body string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"title":"Stolen"}`},
		{http.MethodDelete, ""},
	} {
		req := apitest.New().
			Handler(handler).
			Method(tc.method).
			URL("/api/items/1").
			Cookie(cookieName, other)
		if tc.body != "" {
			req = req.JSON(tc.body)
		}
		req.Expect(t).
			Status(http.StatusNotFound).
			Body(`{"error":"Not found"}`).
			End()
	}

	apitest.New().
		Handler(handler).
		Get("/api/items").
		Cookie(cookieName, other).
		Expect(t).
		Status(http.StatusOK).
		Body(`{"items":[]}`).
		End()

	apitest.New().
		Handler(handler).
		Get("/api/items/1").
		Cookie(cookieName, demo).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.item.title", "Private")).
		End()
}

func TestE2E_DuplicateRegistration(t *testing.T) {
	handler := newE2EServer(t)

	apitest.New().
		Handler(handler).
		Post("/api/auth/register").
		JSON(`{"email":"demo@example.com","password":"whatever"}`).
		Expect(t).
		Status(http.StatusConflict).
		Body(`{"error":"Email is already registered"}`).
		End()
}

func TestE2E_Healthz(t *testing.T) {
	apitest.New().
		Handler(newE2EServer(t)).
		Get("/healthz").
		Expect(t).
		Status(http.StatusOK).
		Body(`{"status":"ok"}`).
		End()
}
