package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurizinlala/bike-erp/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "bike-erp", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "bike-erp-storage", cfg.Storage.Key)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvSobrepoe(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
}
