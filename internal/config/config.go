// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// health-diary client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the device identifier
	// and the recognition locale.
	App App `envPrefix:"APP_"`

	// Auth holds the account credentials used for the initial login.
	Auth Auth `envPrefix:"AUTH_"`

	// Adapter holds the backend address and timeout used by the client
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local metric buffer database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background sync jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceID is the stable per-installation device identifier carried in
	// every sync payload. Its generation is the platform layer's concern;
	// the client only transports it.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// Locale is the hint passed to the food recognizer (e.g. "zh-CN").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds the account credentials used to open a session.
type Auth struct {
	// Email is the account email for login.
	// Env: AUTH_EMAIL
	Email string `env:"EMAIL"`

	// Password is the account password for login. Prefer supplying it via
	// environment over flags so it does not leak into process listings.
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the backend endpoint address, with or without scheme
	// (e.g. "https://api.example.com" or "localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the metric buffer database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite metric buffer.
type DB struct {
	// DSN is the SQLite data source name, typically a file path
	// (e.g. "health-diary.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the background health sync runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
