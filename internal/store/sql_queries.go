// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	usersTable = "users"
	itemsTable = "items"
)

var (
	userColumns = []string{"id", "email", "password_hash", "created_at"}
	itemColumns = []string{"id", "user_id", "title", "description", "created_at"}
)

const (
	returningUser = "RETURNING id, email, password_hash, created_at"
	returningItem = "RETURNING id, user_id, title, description, created_at"
)

// ownedBy is the authorization predicate every item read, update and delete
// carries: the row must match both its id and the requesting user.
func ownedBy(userID, itemID int64) sq.And {
	return sq.And{
		sq.Eq{"id": itemID},
		sq.Eq{"user_id": userID},
	}
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix(returningUser).
		ToSql()
}

func buildInsertUserIfAbsentQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("ON CONFLICT (email) DO NOTHING").
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildCreateItemQuery takes the owner from item.UserID, which the service
// layer fills from the authenticated identity.
func buildCreateItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Insert(itemsTable).
		Columns("user_id", "title", "description").
		Values(item.UserID, item.Title, item.Description).
		Suffix(returningItem).
		ToSql()
}

func buildListItemsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildGetItemQuery(b sq.StatementBuilderType, userID, itemID int64) (string, []any, error) {
	return b.Select(itemColumns...).
		From(itemsTable).
		Where(ownedBy(userID, itemID)).
		ToSql()
}

func buildUpdateItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Update(itemsTable).
		Set("title", item.Title).
		Set("description", item.Description).
		Where(ownedBy(item.UserID, item.ID)).
		Suffix(returningItem).
		ToSql()
}

func buildDeleteItemQuery(b sq.StatementBuilderType, userID, itemID int64) (string, []any, error) {
	return b.Delete(itemsTable).
		Where(ownedBy(userID, itemID)).
		ToSql()
}
