package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ─────────────────────────────────────────────
// Repository fakes
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	insertUserIfAbsentFn func(ctx context.Context, user models.User) (bool, error)
	findUserByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) InsertUserIfAbsent(ctx context.Context, user models.User) (bool, error) {
	if m.insertUserIfAbsentFn != nil {
		return m.insertUserIfAbsentFn(ctx, user)
	}
	return true, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

type mockItemRepository struct {
	createFn func(ctx context.Context, item models.Item) (models.Item, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Item, error)
	getFn    func(ctx context.Context, userID, itemID int64) (models.Item, error)
	updateFn func(ctx context.Context, item models.Item) (models.Item, error)
	deleteFn func(ctx context.Context, userID, itemID int64) error
}

func (m *mockItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemRepository) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockItemRepository) GetItem(ctx context.Context, userID, itemID int64) (models.Item, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, itemID)
	}
	return models.Item{}, nil
}

func (m *mockItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemRepository) DeleteItem(ctx context.Context, userID, itemID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, itemID)
	}
	return nil
}
