package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Admin: &AdminConfig{Enabled: true}}
	cfg.Storage.Driver = "  Memory "

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Storage.SlowQueryThreshold)
	assert.Equal(t, defaultAdminTokenTTL, cfg.Admin.TokenTTL)
	require.NotNil(t, cfg.Blob)
	assert.Equal(t, defaultBlobURL, cfg.Blob.URL)
	assert.Equal(t, defaultMediaBaseURL, cfg.Blob.PublicBaseURL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Admin: &AdminConfig{TokenTTL: time.Hour},
		Blob:  &BlobConfig{URL: "file:///var/studio/uploads", PublicBaseURL: "https://cdn.example.com"},
	}
	cfg.HTTP.MaxRequestBodySize = "2MB"
	cfg.Storage.Driver = StorageDriverPostgres
	cfg.Storage.SlowQueryThreshold = time.Second

	cfg.applyDefaults()

	assert.Equal(t, "2MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, time.Second, cfg.Storage.SlowQueryThreshold)
	assert.Equal(t, time.Hour, cfg.Admin.TokenTTL)
	assert.Equal(t, "file:///var/studio/uploads", cfg.Blob.URL)
	assert.Equal(t, "https://cdn.example.com", cfg.Blob.PublicBaseURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "memory driver",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "sqlite" },
			wantErr: "unknown storage driver",
		},
		{
			name:    "postgres without section",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = StorageDriverPostgres },
			wantErr: "requires a postgres section",
		},
		{
			name: "postgres with section",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = StorageDriverPostgres
				cfg.Postgres = &postgres.DBConn{}
			},
		},
		{
			name:    "admin without credentials",
			mutate:  func(cfg *Config) { cfg.Admin = &AdminConfig{Enabled: true, TokenSecret: "s"} },
			wantErr: "admin username and password",
		},
		{
			name: "admin without secret",
			mutate: func(cfg *Config) {
				cfg.Admin = &AdminConfig{Enabled: true, Username: "studio", Password: "long-enough"}
			},
			wantErr: "token secret",
		},
		{
			name:   "admin disabled ignores empty credentials",
			mutate: func(cfg *Config) { cfg.Admin = &AdminConfig{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Storage.Driver = StorageDriverMemory
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
