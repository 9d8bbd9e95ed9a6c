// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// itemRepository is the SQL implementation of [ItemRepository].
//
// Ownership is enforced in SQL: every statement other than INSERT filters by
// both id and user_id, so an item of another user behaves exactly like a
// missing one and surfaces as [ErrItemNotFound].
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateItemQuery(r.db.builder, item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error creating item")
		return models.Item{}, r.db.classify(err, ErrExecutingQuery)
	}

	return created, nil
}

// ListItems returns the user's items, most recent first. Items created within
// the same clock tick are ordered by descending id.
func (r *itemRepository) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error selecting items")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error scanning item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error iterating items")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *itemRepository) GetItem(ctx context.Context, userID, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemQuery(r.db.builder, userID, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error selecting item")
		return models.Item{}, r.db.classify(err, ErrExecutingQuery)
	}

	return item, nil
}

// UpdateItem replaces title and description of an item owned by
// item.UserID and returns the stored row.
func (r *itemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(r.db.builder, item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error updating item")
		return models.Item{}, r.db.classify(err, ErrExecutingQuery)
	}

	return updated, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, userID, itemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(r.db.builder, userID, itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error deleting item")
		return r.db.classify(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ID, &item.UserID, &item.Title, &item.Description, scanTimestamp(&item.CreatedAt))
	return item, err
}
