// Copyright (c) 2026 Faststamps. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/faststamps/catalog-api/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the catalogue API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// CatalogCSVFile is the semicolon-delimited CSV file holding the full
	// stamp catalogue. It is read once at startup; a missing or malformed
	// file is fatal.
	CatalogCSVFile string `env:"CATALOG_CSV_FILE" envDefault:"./data/french-stamps.csv"`

	// CatalogImagesDir is the directory holding the stamp image files
	// referenced by the catalogue records.
	CatalogImagesDir string `env:"CATALOG_IMAGES_DIR" envDefault:"./data/images/large"`

	// ResultsPerPage is the page size used by the search-results endpoint.
	ResultsPerPage int `env:"RESULTS_PER_PAGE" envDefault:"20"`

	// LinkedPages is the maximum number of page-number links exposed in the
	// search-results page specification.
	LinkedPages int `env:"LINKED_PAGES" envDefault:"10"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.ResultsPerPage <= 0 {
		return nil, fmt.Errorf("config: RESULTS_PER_PAGE must be > 0, got %d", cfg.ResultsPerPage)
	}
	if cfg.LinkedPages < 0 {
		return nil, fmt.Errorf("config: LINKED_PAGES must be >= 0, got %d", cfg.LinkedPages)
	}

	return cfg, nil
}

// ExtraOriginList returns the additional CORS origins configured via
// EXTRA_ORIGINS as a comma-separated list.
func (c *Config) ExtraOriginList() []string {
	return query.StringSlice(c.ExtraOrigins)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
