package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv             string   `json:"app_env"`
	ServerPort         int      `json:"server_port"`
	JWTSecretKey       string   `json:"jwt_secret_key"`
	JWTExpirationHours int      `json:"jwt_expiration_hours"`
	DefaultRateLimit   int      `json:"default_rate_limit"`
	GlobalRateLimit    int      `json:"global_rate_limit"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	DefaultPageSize    int      `json:"default_page_size"`
	MaxPageSize        int      `json:"max_page_size"`
	AutoMigrate        bool     `json:"auto_migrate"`
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnvWithDefault("APP_ENV", "development"),
		ServerPort:         getEnvIntWithDefault("SERVER_PORT", 10000),
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: getEnvIntWithDefault("JWT_EXPIRATION_HOURS", 24),
		DefaultRateLimit:   getEnvIntWithDefault("DEFAULT_RATE_LIMIT", 1000),  // per tenant per minute
		GlobalRateLimit:    getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000), // per IP per minute
		CORSAllowedOrigins: splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		DefaultPageSize:    getEnvIntWithDefault("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:        getEnvIntWithDefault("MAX_PAGE_SIZE", 100),
		AutoMigrate:        getEnvBoolWithDefault("AUTO_MIGRATE", false),
	}

	if cfg.AppEnv == "production" && cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required in production")
	}
	if cfg.DefaultPageSize < 1 || cfg.MaxPageSize < cfg.DefaultPageSize {
		return nil, fmt.Errorf("invalid page size limits: default %d, max %d", cfg.DefaultPageSize, cfg.MaxPageSize)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
