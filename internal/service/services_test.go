package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func testStorages() *store.Storages {
	return &store.Storages{UserRepository: &mockUserRepository{}, ItemRepository: &mockItemRepository{}}
}

func TestNewServices_Success(t *testing.T) {
	cfg := config.App{SessionSecret: "s", PasswordHasher: "bcrypt", BcryptCost: 4, Version: "1.0.0"}

	services, err := NewServices(testStorages(), cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.IsType(t, &ItemValidationService{}, services.ItemService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(t.Context()))
}

func TestNewServices_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		wantErr error
	}{
		{name: "unknown hasher", cfg: config.App{SessionSecret: "s", PasswordHasher: "md5", Version: "1"}, wantErr: utils.ErrUnknownPasswordHasher},
		{name: "empty secret", cfg: config.App{PasswordHasher: "sha256", Version: "1"}, wantErr: utils.ErrEmptyTokenSecret},
		{name: "no version", cfg: config.App{SessionSecret: "s"}, wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServices(testStorages(), tt.cfg, models.AppBuildInfo{}, logger.Nop())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
