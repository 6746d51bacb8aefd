package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port   string
	AppEnv string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	DBRetries  int

	RedisAddr   string
	KafkaBroker string

	JWTSecret string
	JWTTTL    time.Duration

	ProfileCacheTTL time.Duration
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment. godotenv is applied by the
// caller before Load runs.
func Load() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", "3000"),
		AppEnv:      getenv("APP_ENV", "development"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET required")
	}

	retries, err := strconv.Atoi(getenv("DB_MAX_RETRIES", "5"))
	if err != nil || retries < 1 {
		return Config{}, fmt.Errorf("invalid DB_MAX_RETRIES: %q", os.Getenv("DB_MAX_RETRIES"))
	}
	cfg.DBRetries = retries

	if cfg.JWTTTL, err = parseDuration("JWT_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ProfileCacheTTL, err = parseDuration("PROFILE_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}
