// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// itemService delegates to the item repository. Callers are expected to
// wrap it with the validation decorator; see NewItemValidationService.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *itemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	created, err := s.itemRepository.CreateItem(ctx, normalizeItem(item))
	if err != nil {
		return models.Item{}, fmt.Errorf("error creating item: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("item_id", created.ID).Int64("user_id", created.UserID).Msg("item created")
	return created, nil
}

func (s *itemService) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	return items, nil
}

func (s *itemService) GetItem(ctx context.Context, userID, itemID int64) (models.Item, error) {
	item, err := s.itemRepository.GetItem(ctx, userID, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("error getting item: %w", err)
	}

	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	updated, err := s.itemRepository.UpdateItem(ctx, normalizeItem(item))
	if err != nil {
		return models.Item{}, fmt.Errorf("error updating item: %w", err)
	}

	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	if err := s.itemRepository.DeleteItem(ctx, userID, itemID); err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("item_id", itemID).Int64("user_id", userID).Msg("item deleted")
	return nil
}

// normalizeItem stores an empty description as NULL.
func normalizeItem(item models.Item) models.Item {
	if item.Description != nil && *item.Description == "" {
		item.Description = nil
	}
	return item
}
