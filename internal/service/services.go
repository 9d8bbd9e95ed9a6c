package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	AppInfoService AppInfoService
}

// NewServices wires every service from the storages and the app config.
// The item service is returned already wrapped with validation.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := utils.NewPasswordHasher(cfg.PasswordHasher, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	tokens, err := utils.NewTokenCodec(cfg.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	authService, err := NewAuthService(storages.UserRepository, hasher, tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	itemService := NewItemValidationService().Wrap(NewItemService(storages.ItemRepository, logger))

	return &Services{
		AuthService:    authService,
		ItemService:    itemService,
		AppInfoService: appInfoService,
	}, nil
}
