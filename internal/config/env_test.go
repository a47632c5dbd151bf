// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_DEVICE_ID": "device-123",
		"APP_LOCALE":    "zh-CN",
		"APP_VERSION":   "1.2.3",

		"AUTH_EMAIL":    "alice@example.com",
		"AUTH_PASSWORD": "secret",

		"ADAPTER_ADDRESS":         "localhost:8000",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "health-diary.db",

		"WORKERS_SYNC_INTERVAL": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "device-123", cfg.App.DeviceID)
	assert.Equal(t, "zh-CN", cfg.App.Locale)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "alice@example.com", cfg.Auth.Email)
	assert.Equal(t, "secret", cfg.Auth.Password)

	assert.Equal(t, "localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "health-diary.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_DEVICE_ID":   "device-456",
		"ADAPTER_ADDRESS": "localhost:9000",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "device-456", cfg.App.DeviceID)
	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.SyncInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
