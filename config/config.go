package config

import (
	"errors"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrMissingDSN is fatal at startup: without a store there is nothing
// the service can do, and an orchestrator should restart it.
var ErrMissingDSN = errors.New("DATABASE_DSN is not set")

type Config struct {
	DBDriver    string
	DatabaseDSN string
	Port        string

	// BaseURL, when set, is prefixed to locally stored image paths so
	// the service hands out absolute URLs instead of /images/... paths.
	BaseURL   string
	UploadDir string

	AllowedOrigins string
	SeedData       bool

	StorageDriver string

	RateLimit         int
	RateWindowSeconds int
}

func Load() *Config {
	cfg := &Config{
		DBDriver:          getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		Port:              getEnv("PORT", "5000"),
		BaseURL:           os.Getenv("BASE_URL"),
		UploadDir:         getEnv("UPLOAD_DIR", "public/images"),
		AllowedOrigins:    os.Getenv("ALLOWED_ORIGINS"),
		SeedData:          os.Getenv("SEED_DATA") == "true",
		StorageDriver:     getEnv("STORAGE_DRIVER", "local"),
		RateLimit:         getEnvInt("RATE_LIMIT", 100),
		RateWindowSeconds: getEnvInt("RATE_WINDOW_SECONDS", 900),
	}
	return cfg
}

// OpenDB connects to the configured store. MySQL is the production
// driver; sqlite covers local runs and tests.
func (c *Config) OpenDB() (*gorm.DB, error) {
	if c.DatabaseDSN == "" {
		return nil, ErrMissingDSN
	}
	switch c.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(c.DatabaseDSN), &gorm.Config{})
	default:
		return gorm.Open(mysql.Open(c.DatabaseDSN), &gorm.Config{})
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
