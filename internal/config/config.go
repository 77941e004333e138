package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort                 string `mapstructure:"SERVER_PORT"`
	DatabaseDSN                string `mapstructure:"DATABASE_DSN"`
	MigrationsDir              string `mapstructure:"MIGRATIONS_DIR"`
	JWTSecret                  string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes              int    `mapstructure:"JWT_TTL_MINUTES"`
	RateProviderURL            string `mapstructure:"RATE_PROVIDER_URL"`
	RateProviderKey            string `mapstructure:"RATE_PROVIDER_KEY"`
	RateProviderTimeoutSeconds int    `mapstructure:"RATE_PROVIDER_TIMEOUT_SECONDS"`
	RateCacheTTLMinutes        int    `mapstructure:"RATE_CACHE_TTL_MINUTES"`
}

func Load(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MIGRATIONS_DIR", "migrations")
	viper.SetDefault("JWT_TTL_MINUTES", 60*24)
	viper.SetDefault("RATE_PROVIDER_URL", "https://api.freecurrencyapi.com/v1/latest")
	viper.SetDefault("RATE_PROVIDER_TIMEOUT_SECONDS", 10)
	viper.SetDefault("RATE_CACHE_TTL_MINUTES", 15)

	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("DATABASE_DSN")
	_ = viper.BindEnv("MIGRATIONS_DIR")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("JWT_TTL_MINUTES")
	_ = viper.BindEnv("RATE_PROVIDER_URL")
	_ = viper.BindEnv("RATE_PROVIDER_KEY")
	_ = viper.BindEnv("RATE_PROVIDER_TIMEOUT_SECONDS")
	_ = viper.BindEnv("RATE_CACHE_TTL_MINUTES")

	// The .env file is optional; environment variables alone are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.DatabaseDSN) == "" {
		return Config{}, fmt.Errorf("DATABASE_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

func (c Config) RateCacheTTL() time.Duration {
	return time.Duration(c.RateCacheTTLMinutes) * time.Minute
}

func (c Config) RateProviderTimeout() time.Duration {
	return time.Duration(c.RateProviderTimeoutSeconds) * time.Second
}
