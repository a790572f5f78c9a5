package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.FXBaseCurrency)
	assert.Equal(t, []string{"XOF", "EUR", "USD", "GBP"}, cfg.FXCurrencies)
	assert.Equal(t, defaultFXProviderTimeout, cfg.FXProviderTimeout)
	assert.Equal(t, defaultRepositoryTimeout, cfg.RepositoryTimeout)
	assert.Equal(t, defaultRecordUpdateTimeout, cfg.RecordUpdateTimeout)
	assert.Equal(t, defaultBulkUpdateConcurrency, cfg.BulkUpdateConcurrency)
	assert.Equal(t, "1.08", cfg.StaticUSDPerEUR.String())
	assert.Equal(t, "100-M", cfg.RateLimit)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("FX_BASE_CURRENCY", " usd ")
	t.Setenv("FX_CURRENCIES", "xof, eur,,usd")
	t.Setenv("FX_PROVIDER_TIMEOUT", "750ms")
	t.Setenv("BULK_UPDATE_CONCURRENCY", "3")
	t.Setenv("FX_STATIC_GBP_PER_EUR", "0.8612")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.FXBaseCurrency)
	assert.Equal(t, []string{"XOF", "EUR", "USD"}, cfg.FXCurrencies)
	assert.Equal(t, 750*time.Millisecond, cfg.FXProviderTimeout)
	assert.Equal(t, 3, cfg.BulkUpdateConcurrency)
	assert.Equal(t, "0.8612", cfg.StaticGBPPerEUR.String())
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REPOSITORY_TIMEOUT", "soon")
	t.Setenv("RECORD_UPDATE_TIMEOUT", "-1s")
	t.Setenv("FX_STATIC_USD_PER_EUR", "-2")
	t.Setenv("BULK_UPDATE_CONCURRENCY", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultRepositoryTimeout, cfg.RepositoryTimeout)
	assert.Equal(t, defaultRecordUpdateTimeout, cfg.RecordUpdateTimeout)
	assert.Equal(t, "1.08", cfg.StaticUSDPerEUR.String())
	assert.Equal(t, defaultBulkUpdateConcurrency, cfg.BulkUpdateConcurrency)
}
