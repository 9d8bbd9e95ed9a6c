package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a user and returns it with server-assigned fields.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// InsertUserIfAbsent inserts user unless the email is taken. It reports
	// whether a row was inserted.
	InsertUserIfAbsent(ctx context.Context, user models.User) (bool, error)
	// FindUserByEmail looks a user up by exact email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID looks a user up by primary key.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ItemRepository persists items. Every method is scoped to one owner:
// rows belonging to other users are never read, changed or removed.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	ListItems(ctx context.Context, userID int64) ([]models.Item, error)
	GetItem(ctx context.Context, userID, itemID int64) (models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
}
