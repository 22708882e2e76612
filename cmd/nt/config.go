package main

import (
	"fmt"
	"os"

	"nexttick/internal/config"
	"nexttick/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from NT_ENV
func GetEnvironment() Environment {
	switch os.Getenv("NT_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}

// StoreFactory creates record store instances based on environment
type StoreFactory struct {
	env Environment
	cfg *config.Config
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment, cfg *config.Config) *StoreFactory {
	return &StoreFactory{env: env, cfg: cfg}
}

// CreateStore creates a record store instance based on the current environment
func (sf *StoreFactory) CreateStore() (sqlite.RecordStore, error) {
	switch sf.env {
	case Development:
		// For development, use a local database file
		return sqlite.New("nexttick.db")
	case Testing:
		// For testing, use an in-memory database
		return sqlite.New(":memory:")
	default:
		return sf.createProductionStore()
	}
}

// createProductionStore creates a record store at the configured location
func (sf *StoreFactory) createProductionStore() (sqlite.RecordStore, error) {
	perms := os.FileMode(sf.cfg.Database.DirPermissions)
	if err := os.MkdirAll(sf.cfg.Database.Dir, perms); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := sqlite.New(sf.cfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}
