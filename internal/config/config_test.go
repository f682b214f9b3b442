package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, money.Rupees(5000), cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, money.Rupees(500), cfg.Pricing.FlatShippingFee)
	assert.Equal(t, "0.18", cfg.Pricing.TaxRate.String())
	assert.Equal(t, RangePolicyMinimum, cfg.Pricing.RangePolicy)
	assert.Equal(t, time.Duration(0), cfg.Checkout.Delay)
	assert.Equal(t, "storefront_orders", cfg.RabbitMQ.Queue)
	assert.Equal(t, 4, cfg.RabbitMQ.ChannelPoolSize)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Empty(t, cfg.Admin.KeyHash)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("FREE_SHIPPING_THRESHOLD", "7500.50")
	t.Setenv("FLAT_SHIPPING_FEE", "250")
	t.Setenv("TAX_RATE", "0.05")
	t.Setenv("CHECKOUT_DELAY", "2s")
	t.Setenv("PRICE_RANGE_POLICY", "max")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, money.Amount(750050), cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, money.Rupees(250), cfg.Pricing.FlatShippingFee)
	assert.Equal(t, "0.05", cfg.Pricing.TaxRate.String())
	assert.Equal(t, 2*time.Second, cfg.Checkout.Delay)
	assert.Equal(t, RangePolicyMaximum, cfg.Pricing.RangePolicy)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"STORAGE_DRIVER", "sqlite"},
		{"TAX_RATE", "eighteen"},
		{"TAX_RATE", "-0.1"},
		{"FLAT_SHIPPING_FEE", "-5"},
		{"CHECKOUT_DELAY", "soon"},
		{"RABBITMQ_CHANNEL_POOL_SIZE", "0"},
		{"PRICE_RANGE_POLICY", "median"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
