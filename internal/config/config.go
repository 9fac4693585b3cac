// Package config loads application configuration from the environment and
// an optional .env file using Viper.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Addr       string `mapstructure:"ADDR"`
	GinMode    string `mapstructure:"GIN_MODE"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	// JWTSecret signs access tokens (HS256).
	JWTSecret string `mapstructure:"JWT_SECRET"`
	JWTIssuer string `mapstructure:"JWT_ISSUER"`
	// JWTTTL is the access token lifetime (e.g. "168h").
	JWTTTL time.Duration `mapstructure:"JWT_TTL"`
}

// Load reads .env (if present), then builds Config from the environment.
// Environment variables override .env values; a missing .env is ignored.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "saas")
	v.SetDefault("DB_PASSWORD", "saas")
	v.SetDefault("DB_NAME", "saas_rbac")
	v.SetDefault("JWT_SECRET", "default-secret-key-change-me")
	v.SetDefault("JWT_ISSUER", "saas-rbac-api")
	v.SetDefault("JWT_TTL", "168h") // 7 days

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
