// Package config reads service settings from the environment and the
// gateway routing rules from a YAML file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the environment-driven settings shared by every service.
type Config struct {
	Port        string
	Env         string
	DBDriver    string
	DBDSN       string
	RabbitMQURL string
}

// Load reads configuration from the environment with per-service defaults.
func Load(defaultPort string) Config {
	viper.SetDefault("APP_PORT", defaultPort)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "file::memory:?cache=shared")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return Config{
		Port:        viper.GetString("APP_PORT"),
		Env:         viper.GetString("APP_ENV"),
		DBDriver:    viper.GetString("DB_DRIVER"),
		DBDSN:       viper.GetString("DB_DSN"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
	}
}

// Route is one gateway forwarding rule: requests whose path starts with
// Prefix are proxied to Upstream, optionally through the response cache.
type Route struct {
	Prefix   string        `mapstructure:"prefix"`
	Upstream string        `mapstructure:"upstream"`
	Cache    bool          `mapstructure:"cache"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// GatewayConfig holds the gateway port and its routing rules.
type GatewayConfig struct {
	Port   string
	Env    string
	Routes []Route
}

// LoadGateway reads the gateway settings from the environment and the
// routing rules from the file named by GATEWAY_ROUTES.
func LoadGateway() (GatewayConfig, error) {
	viper.SetDefault("GATEWAY_PORT", ":8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("GATEWAY_ROUTES", "gateway.yaml")
	viper.AutomaticEnv()

	cfg := GatewayConfig{
		Port: viper.GetString("GATEWAY_PORT"),
		Env:  viper.GetString("APP_ENV"),
	}

	routes := viper.New()
	routes.SetConfigFile(viper.GetString("GATEWAY_ROUTES"))
	if err := routes.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read gateway routes: %w", err)
	}
	if err := routes.UnmarshalKey("routes", &cfg.Routes); err != nil {
		return cfg, fmt.Errorf("failed to parse gateway routes: %w", err)
	}
	return cfg, nil
}
