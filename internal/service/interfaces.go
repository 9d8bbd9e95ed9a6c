package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// AuthService verifies credentials, issues session tokens and resolves the
// user behind a token.
type AuthService interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	// Login checks creds and returns the matching user.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	// CreateToken issues a signed session token for user.
	CreateToken(ctx context.Context, user models.User) (string, error)
	// ParseToken verifies tokenString and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error)
	// CurrentUser returns the user a session token belongs to, re-read from storage.
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)
	// SeedUser creates the account described by creds unless it exists.
	SeedUser(ctx context.Context, creds models.Credentials) (bool, error)
}

// ItemService manages items on behalf of an authenticated user.
// Every method is scoped by the owner's user ID.
type ItemService interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	ListItems(ctx context.Context, userID int64) ([]models.Item, error)
	GetItem(ctx context.Context, userID, itemID int64) (models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
}

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// logging or validating.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService // returns a decorated ItemService applying additional behavior
}

// AppInfoService exposes build and runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
