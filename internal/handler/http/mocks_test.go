package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn       func(ctx context.Context, creds models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (string, error)
	currentUserFn func(ctx context.Context, token string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (string, error) {
	if m.createTokenFn == nil {
		return "signed-token", nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(_ context.Context, _ string) (models.SessionClaims, error) {
	return models.SessionClaims{}, nil
}

func (m *mockAuthService) CurrentUser(ctx context.Context, token string) (models.User, error) {
	return m.currentUserFn(ctx, token)
}

func (m *mockAuthService) SeedUser(_ context.Context, _ models.Credentials) (bool, error) {
	return false, nil
}

// mockItemService implements service.ItemService for unit tests.
type mockItemService struct {
	createFn func(ctx context.Context, item models.Item) (models.Item, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Item, error)
	getFn    func(ctx context.Context, userID, itemID int64) (models.Item, error)
	updateFn func(ctx context.Context, item models.Item) (models.Item, error)
	deleteFn func(ctx context.Context, userID, itemID int64) error
}

func (m *mockItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return m.createFn(ctx, item)
}

func (m *mockItemService) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	return m.listFn(ctx, userID)
}

func (m *mockItemService) GetItem(ctx context.Context, userID, itemID int64) (models.Item, error) {
	return m.getFn(ctx, userID, itemID)
}

func (m *mockItemService) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return m.updateFn(ctx, item)
}

func (m *mockItemService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	return m.deleteFn(ctx, userID, itemID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version   string
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testUser is the identity every authenticated fake request resolves to.
var testUser = models.User{ID: 7, Email: "demo@example.com"}

// authAs returns an AuthService fake whose CurrentUser accepts the token
// "valid" and resolves it to user.
func authAs(user models.User) *mockAuthService {
	return &mockAuthService{
		currentUserFn: func(_ context.Context, token string) (models.User, error) {
			if token != "valid" {
				return models.User{}, service.ErrUnauthenticated
			}
			return user, nil
		},
	}
}

func newTestHandler(t *testing.T, svcs *service.Services, opts ...Option) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, config.App{}, logger.Nop(), opts...)
}
