package store

import "github.com/MKhiriev/go-notes-keeper/internal/logger"

// Storages bundles the repositories built on one [DB].
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewStorages constructs every repository on db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
	}
}
