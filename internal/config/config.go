package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Storage     StorageConfig
	Database    DatabaseConfig
	Pricing     PricingConfig
	Checkout    CheckoutConfig
	RabbitMQ    RabbitMQConfig
	Admin       AdminConfig
}

type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Range policies for products priced as {min, max}
const (
	RangePolicyMinimum = "min"
	RangePolicyMaximum = "max"
)

type PricingConfig struct {
	FreeShippingThreshold money.Amount
	FlatShippingFee       money.Amount
	TaxRate               decimal.Decimal
	RangePolicy           string
}

type CheckoutConfig struct {
	// Delay is an artificial pause before an order is written. Zero disables it.
	Delay time.Duration
}

type RabbitMQConfig struct {
	URL             string
	Queue           string
	ChannelPoolSize int
}

type AdminConfig struct {
	// KeyHash is a bcrypt hash of the admin API key. Empty disables admin routes.
	KeyHash string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_DRIVER", StorageMemory)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Storage: StorageConfig{
			Driver: getEnvOrViper("STORAGE_DRIVER", StorageMemory),
		},
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   getEnvOrViper("RABBITMQ_URL", ""),
			Queue: getEnvOrViper("RABBITMQ_QUEUE", "storefront_orders"),
		},
		Admin: AdminConfig{
			KeyHash: getEnvOrViper("ADMIN_API_KEY_HASH", ""),
		},
	}

	var err error
	if cfg.Pricing.FreeShippingThreshold, err = money.Parse(getEnvOrViper("FREE_SHIPPING_THRESHOLD", "5000")); err != nil {
		return nil, fmt.Errorf("FREE_SHIPPING_THRESHOLD: %w", err)
	}
	if cfg.Pricing.FlatShippingFee, err = money.Parse(getEnvOrViper("FLAT_SHIPPING_FEE", "500")); err != nil {
		return nil, fmt.Errorf("FLAT_SHIPPING_FEE: %w", err)
	}
	if cfg.Pricing.TaxRate, err = decimal.NewFromString(getEnvOrViper("TAX_RATE", "0.18")); err != nil {
		return nil, fmt.Errorf("TAX_RATE: %w", err)
	}
	cfg.Pricing.RangePolicy = getEnvOrViper("PRICE_RANGE_POLICY", RangePolicyMinimum)
	if cfg.Checkout.Delay, err = time.ParseDuration(getEnvOrViper("CHECKOUT_DELAY", "0s")); err != nil {
		return nil, fmt.Errorf("CHECKOUT_DELAY: %w", err)
	}
	if cfg.RabbitMQ.ChannelPoolSize, err = strconv.Atoi(getEnvOrViper("RABBITMQ_CHANNEL_POOL_SIZE", "4")); err != nil {
		return nil, fmt.Errorf("RABBITMQ_CHANNEL_POOL_SIZE: %w", err)
	}

	// Validate
	if cfg.Storage.Driver != StorageMemory && cfg.Storage.Driver != StoragePostgres {
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMemory, StoragePostgres, cfg.Storage.Driver)
	}
	if cfg.Pricing.FreeShippingThreshold < 0 || cfg.Pricing.FlatShippingFee < 0 {
		return nil, fmt.Errorf("shipping amounts must not be negative")
	}
	if cfg.Pricing.TaxRate.IsNegative() {
		return nil, fmt.Errorf("TAX_RATE must not be negative")
	}
	if cfg.Pricing.RangePolicy != RangePolicyMinimum && cfg.Pricing.RangePolicy != RangePolicyMaximum {
		return nil, fmt.Errorf("PRICE_RANGE_POLICY must be %q or %q, got %q", RangePolicyMinimum, RangePolicyMaximum, cfg.Pricing.RangePolicy)
	}
	if cfg.Checkout.Delay < 0 {
		return nil, fmt.Errorf("CHECKOUT_DELAY must not be negative")
	}
	if cfg.RabbitMQ.ChannelPoolSize < 1 {
		return nil, fmt.Errorf("RABBITMQ_CHANNEL_POOL_SIZE must be at least 1")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
