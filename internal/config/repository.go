package config

import (
	"os"

	"ritual/internal/errors"
	"ritual/internal/repository/sqlite"
)

// CreateRepository opens the store described by config, creating its
// directory first.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, errors.NewStorageUnavailableError(config.Database.Dir, err)
	}

	return sqlite.NewWithOptions(config.GetDatabasePath(), StoreOptions(config))
}

// StoreOptions maps the database section onto sqlite.Options.
func StoreOptions(config *Config) sqlite.Options {
	return sqlite.Options{
		Driver:       config.Database.Driver,
		QueryTimeout: config.Database.QueryTimeout,
		WriteTimeout: config.Database.WriteTimeout,
	}
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	return sqlite.New(":memory:")
}
