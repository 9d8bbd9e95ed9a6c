package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldItemID targets the item primary key; required for update and delete.
	FieldItemID = "id"

	// FieldUserID targets the owner of an item.
	FieldUserID = "user_id"

	// FieldTitle targets the item title, which must not be blank.
	FieldTitle = "title"

	// FieldEmail targets the login email of credentials.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of credentials.
	FieldPassword = "password"
)

// ItemValidator implements [Validator] for [models.Item] and
// [models.Credentials], accepting both value and pointer forms.
type ItemValidator struct{}

// NewItemValidator constructs a new ItemValidator
// and returns it as the Validator interface.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Default fields when none are given:
//   - models.Item: user_id, title
//   - models.Credentials: email, password
//
// Returns ErrUnsupportedType for any other type and the first failing
// field's error otherwise.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ID <= 0 {
				return ErrInvalidItemID
			}
		case FieldUserID:
			if item.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if strings.TrimSpace(item.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials only checks presence; the email is matched exactly
// and never normalized.
func (v *ItemValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if creds.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
