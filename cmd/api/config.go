package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"bookreviews/internal/platform/storage"
)

type config struct {
	Addr     string `validate:"required"`
	Env      string `validate:"required"`
	LogLevel string

	StoreDriver     string `validate:"oneof=mongo postgres"`
	MongoURI        string `validate:"required_if=StoreDriver mongo"`
	MongoDatabase   string `validate:"required_if=StoreDriver mongo"`
	MongoCollection string `validate:"required_if=StoreDriver mongo"`
	DatabaseDSN     string `validate:"required_if=StoreDriver postgres"`

	CORSAllowedOrigins []string
	MaxBodyBytes       int64 `validate:"gt=0"`
	EnableHSTS         bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

func loadConfig() (config, error) {
	cfg := config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StoreDriver:        getEnv("STORE_DRIVER", storage.DriverMongo),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DATABASE", "bookdatabase"),
		MongoCollection:    getEnv("MONGO_COLLECTION", "books"),
		DatabaseDSN:        os.Getenv("DB_DSN"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	var err error
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil {
		return config{}, fmt.Errorf("MAX_BODY_BYTES: %w", err)
	}
	if cfg.EnableHSTS, err = strconv.ParseBool(getEnv("ENABLE_HSTS", "false")); err != nil {
		return config{}, fmt.Errorf("ENABLE_HSTS: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c config) storeConfig() storage.Config {
	return storage.Config{
		Driver:          c.StoreDriver,
		MongoURI:        c.MongoURI,
		MongoDatabase:   c.MongoDatabase,
		MongoCollection: c.MongoCollection,
		PostgresDSN:     c.DatabaseDSN,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
