package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Waiver   WaiverConfig
	Provider ProviderConfig
	Payment  PaymentConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type CacheConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type WaiverConfig struct {
	Retention       time.Duration
	CleanupInterval time.Duration
}

type ProviderConfig struct {
	BaseURL      string
	FetchTimeout time.Duration
}

type PaymentConfig struct {
	StripeSecretKey string
	SuccessURL      string
	CancelURL       string
}

type AdminConfig struct {
	// Bcrypt hash of the admin API key. The plain key is never stored.
	APIKeyHash string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CACHE_TTL_MINUTES", 30)
	viper.SetDefault("CACHE_SWEEP_MINUTES", 10)
	viper.SetDefault("WAIVER_RETENTION_HOURS", 24)
	viper.SetDefault("WAIVER_CLEANUP_HOURS", 1)
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Cache: CacheConfig{
			TTL:           time.Duration(viper.GetInt("CACHE_TTL_MINUTES")) * time.Minute,
			SweepInterval: time.Duration(viper.GetInt("CACHE_SWEEP_MINUTES")) * time.Minute,
		},
		Waiver: WaiverConfig{
			Retention:       time.Duration(viper.GetInt("WAIVER_RETENTION_HOURS")) * time.Hour,
			CleanupInterval: time.Duration(viper.GetInt("WAIVER_CLEANUP_HOURS")) * time.Hour,
		},
		Provider: ProviderConfig{
			BaseURL:      viper.GetString("PROVIDER_BASE_URL"),
			FetchTimeout: time.Duration(viper.GetInt("PROVIDER_TIMEOUT_SECONDS")) * time.Second,
		},
		Payment: PaymentConfig{
			StripeSecretKey: viper.GetString("STRIPE_SECRET_KEY"),
			SuccessURL:      viper.GetString("PAYMENT_SUCCESS_URL"),
			CancelURL:       viper.GetString("PAYMENT_CANCEL_URL"),
		},
		Admin: AdminConfig{
			APIKeyHash: viper.GetString("ADMIN_API_KEY_HASH"),
		},
	}

	return config, nil
}
