package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ItemValidationService validates arguments before delegating to the
// wrapped ItemService. Failures are wrapped with ErrInvalidDataProvided.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewItemValidator(),
	}
}

func (v *ItemValidationService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if err := v.validator.Validate(ctx, item, validators.FieldUserID, validators.FieldTitle); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateItem(ctx, item)
}

func (v *ItemValidationService) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	if err := v.validator.Validate(ctx, models.Item{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListItems(ctx, userID)
}

func (v *ItemValidationService) GetItem(ctx context.Context, userID, itemID int64) (models.Item, error) {
	if err := v.validator.Validate(ctx, models.Item{ID: itemID, UserID: userID}, validators.FieldUserID, validators.FieldItemID); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetItem(ctx, userID, itemID)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if err := v.validator.Validate(ctx, item, validators.FieldUserID, validators.FieldItemID, validators.FieldTitle); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateItem(ctx, item)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	if err := v.validator.Validate(ctx, models.Item{ID: itemID, UserID: userID}, validators.FieldUserID, validators.FieldItemID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteItem(ctx, userID, itemID)
}

func (v *ItemValidationService) Wrap(wrapped ItemService) ItemService {
	v.inner = wrapped
	return v
}
