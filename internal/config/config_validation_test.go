package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App:     ClientApp{DeviceID: "device-1", Locale: "zh-CN"},
		Adapter: ClientAdapter{HTTPAddress: "localhost:8000", RequestTimeout: 30 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "diary.db"}},
		Workers: ClientWorkers{SyncInterval: 5 * time.Minute},
	}
}

func TestClientConfigValidate_Valid(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:    "missing device id",
			mutate:  func(cfg *ClientConfig) { cfg.App.DeviceID = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing adapter address",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty storage DSN",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero sync interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.SyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
