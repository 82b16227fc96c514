package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	DefaultJWTSecret = "your-super-secret-jwt-key"

	// MinBcryptCost is the lowest cost LoadConfig accepts for password hashing.
	MinBcryptCost = 12
)

type Config struct {
	Environment string
	ServerPort  string

	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string
	DBMaxOpenConns int

	JWTSecret  string
	JWTExpire  time.Duration
	BcryptCost int

	FrontendURL     string
	RateLimitMax    int
	RateLimitWindow time.Duration

	LogLevel  string
	LogFormat string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	env := strings.ToLower(getEnv("APP_ENV", EnvDevelopment))
	production := env == EnvProduction

	cfg := &Config{
		Environment: env,
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "pandas_learning"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		DBPath:      getEnv("DB_PATH", "pandas_learning.db"),
		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:    getEnv("LOG_LEVEL", pick(production, "info", "debug")),
		LogFormat:   getEnv("LOG_FORMAT", pick(production, "json", "console")),
	}

	if cfg.DBMaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getEnvInt("BCRYPT_COST", MinBcryptCost); err != nil {
		return nil, err
	}
	if cfg.BcryptCost < MinBcryptCost {
		cfg.BcryptCost = MinBcryptCost
	}
	if cfg.RateLimitMax, err = getEnvInt("RATE_LIMIT_MAX", pickInt(production, 100, 1000)); err != nil {
		return nil, err
	}
	if cfg.JWTExpire, err = getEnvDuration("JWT_EXPIRE", "7d"); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getEnvDuration("RATE_LIMIT_WINDOW", "15m"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.IsProduction() && c.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWTExpire <= 0 {
		return errors.New("JWT_EXPIRE must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// ParseDuration accepts Go durations ("168h", "15m") and whole days ("7d").
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", value)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(value)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key, defaultValue string) (time.Duration, error) {
	d, err := ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

func pickInt(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
