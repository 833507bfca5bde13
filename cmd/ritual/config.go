package main

import (
	"fmt"
	"os"

	"ritual/internal/api"
	"ritual/internal/cli"
	"ritual/internal/config"
	"ritual/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository(cfg)
	case Testing:
		return rf.createTestingRepository()
	default:
		return rf.createProductionRepository(cfg)
	}
}

// APIFactory adapts the factory to what the root command opens lazily
func (rf *RepositoryFactory) APIFactory() cli.APIFactory {
	return func(cfg *config.Config) (api.API, func() error, error) {
		repo, err := rf.CreateRepository(cfg)
		if err != nil {
			return nil, nil, err
		}
		return api.New(repo, cfg), repo.Close, nil
	}
}

// createDevelopmentRepository uses a database file in the working directory
func (rf *RepositoryFactory) createDevelopmentRepository(cfg *config.Config) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions(cfg.Database.Filename, config.StoreOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// createTestingRepository uses an in-memory database that lives as long as the command
func (rf *RepositoryFactory) createTestingRepository() (sqlite.Repository, error) {
	repo, err := config.CreateTestRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return repo, nil
}

// createProductionRepository uses the configured location, ~/.ritual/ritual.db by default
func (rf *RepositoryFactory) createProductionRepository(cfg *config.Config) (sqlite.Repository, error) {
	return config.CreateRepository(cfg)
}

// getEnvironment determines the current environment from RITUAL_ENV
func getEnvironment() Environment {
	switch os.Getenv("RITUAL_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
