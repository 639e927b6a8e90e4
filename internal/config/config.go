package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development signing key used when JWT_SECRET is unset.
const DefaultJWTSecret = "grabbber"

// ErrInsecureJWTSecret is returned by Validate when admin tokens would be
// signed with DefaultJWTSecret.
var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set when admin login is enabled or ENV=production")

// Config holds the service settings read from the environment.
type Config struct {
	Port              string
	Env               string
	LogLevel          string
	AllowedOrigins    string
	Redis             RedisConfig
	JWTSecret         string
	TokenTTL          time.Duration
	AdminEmail        string
	AdminPasswordHash string
	InquiryRateLimit  int
	InquiryRateWindow time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Load builds a Config from environment variables, falling back to defaults.
func Load() *Config {
	return &Config{
		Port:           GetEnv("PORT", "3000"),
		Env:            GetEnv("ENV", "development"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		AllowedOrigins: GetEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
		JWTSecret:         GetEnv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:          GetDurationEnv("TOKEN_TTL", time.Hour),
		AdminEmail:        strings.ToLower(GetEnv("ADMIN_EMAIL", "")),
		AdminPasswordHash: GetEnv("ADMIN_PASSWORD_HASH", ""),
		InquiryRateLimit:  GetIntEnv("INQUIRY_RATE_LIMIT", 5),
		InquiryRateWindow: GetDurationEnv("INQUIRY_RATE_WINDOW", time.Minute),
	}
}

// IsProduction reports whether the config targets production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects settings the server must not start with.
func (c *Config) Validate() error {
	if c.JWTSecret == DefaultJWTSecret && (c.IsProduction() || c.AdminPasswordHash != "") {
		return ErrInsecureJWTSecret
	}
	return nil
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
