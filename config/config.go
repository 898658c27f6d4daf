package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Port        int

	DatabaseDbPath string

	JWTSecret           string
	AdminTokenLifetime  time.Duration
	DriverTokenLifetime time.Duration

	AllowedOrigins string
}

func InitConfig() (Config, error) {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("environment", "development")
	viper.SetDefault("port", 8080)
	viper.SetDefault("database_db_path", "data/fleetcheck.db")
	viper.SetDefault("jwt_secret", "")
	viper.SetDefault("admin_token_lifetime", "24h")
	viper.SetDefault("driver_token_lifetime", "720h")
	viper.SetDefault("allowed_origins", "*")

	config := Config{
		Environment:         viper.GetString("environment"),
		Port:                viper.GetInt("port"),
		DatabaseDbPath:      viper.GetString("database_db_path"),
		JWTSecret:           viper.GetString("jwt_secret"),
		AdminTokenLifetime:  viper.GetDuration("admin_token_lifetime"),
		DriverTokenLifetime: viper.GetDuration("driver_token_lifetime"),
		AllowedOrigins:      viper.GetString("allowed_origins"),
	}

	if config.Environment == "production" && config.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt_secret is required in production")
	}

	if config.JWTSecret == "" {
		config.JWTSecret = "dev-only-secret"
	}

	return config, nil
}

func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
