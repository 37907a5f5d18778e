package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Hotel distribution platform (supplier) configuration.
	SupplierBaseURL string `mapstructure:"SUPPLIER_BASE_URL"`
	SupplierAPIKey  string `mapstructure:"SUPPLIER_API_KEY"`
	SupplierSandbox bool   `mapstructure:"SUPPLIER_SANDBOX"`

	// Payment processor.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// LLM concierge.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Checkout session lifetime in minutes; should not exceed the
	// supplier's rate-lock window.
	CheckoutTTLMinutes int `mapstructure:"CHECKOUT_TTL_MINUTES"`

	// Popular destinations feed refresh interval (minutes).
	PopularRefreshMinutes int      `mapstructure:"POPULAR_REFRESH_MINUTES"`
	PopularDestinations   []string `mapstructure:"POPULAR_DESTINATIONS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SUPPLIER_BASE_URL", "https://api.liteapi.travel/v3.0")
	viper.SetDefault("SUPPLIER_SANDBOX", true)
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("CHECKOUT_TTL_MINUTES", 25)
	viper.SetDefault("POPULAR_REFRESH_MINUTES", 360)
	viper.SetDefault("POPULAR_DESTINATIONS", []string{
		"London", "Paris", "New York", "Dubai", "Tokyo", "Rome",
	})

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
