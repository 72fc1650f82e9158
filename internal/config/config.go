package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

// Repository backends selectable through REPOSITORY_BACKEND.
const (
	BackendSQL       = "sql"
	BackendDatastore = "datastore"
	BackendMemory    = "memory"
)

type envConfig struct {
	// server config
	APP_PORT        string
	PUBLIC_BASE_URL string
	JWT_SECRET      string
	// storage config
	REPOSITORY_BACKEND   string
	DB_DRIVER            string
	DB_HOST              string
	DB_PORT              int
	DB_USER              string
	DB_PASSWORD          string
	DB_NAME              string
	DB_SSL_MODE          string
	DB_CONN_MAX_LIFETIME time.Duration
	DB_MAX_IDLE_CONNS    int
	DB_MAX_OPEN_CONNS    int
	SQLITE_PATH          string
	DATASTORE_PROJECT_ID string
	// search config
	ELASTIC_URL   string
	ELASTIC_INDEX string
	// department service config
	DEPARTMENT_SERVICE_URL    string
	DEPARTMENT_CLIENT_TIMEOUT time.Duration
	// export config
	EXPORT_LAYOUT_PATH string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
}

// LoadEnvConfig reads .env (if present) and the process environment into
// DefaultEnvConfig.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	DefaultEnvConfig = readEnvConfig()
	return nil
}

func readEnvConfig() *envConfig {
	return &envConfig{
		APP_PORT:                  getEnvString("APP_PORT", "8080"),
		PUBLIC_BASE_URL:           getEnvString("PUBLIC_BASE_URL", ""),
		JWT_SECRET:                getEnvString("JWT_SECRET", ""),
		REPOSITORY_BACKEND:        getEnvString("REPOSITORY_BACKEND", BackendSQL),
		DB_DRIVER:                 getEnvString("DB_DRIVER", "postgres"),
		DB_HOST:                   getEnvString("DB_HOST", "localhost"),
		DB_PORT:                   getEnvInt("DB_PORT", 5432),
		DB_USER:                   getEnvString("DB_USER", "postgres"),
		DB_PASSWORD:               getEnvString("DB_PASSWORD", "postgres"),
		DB_NAME:                   getEnvString("DB_NAME", "postgres"),
		DB_SSL_MODE:               getEnvString("DB_SSL_MODE", "disable"),
		DB_CONN_MAX_LIFETIME:      getEnvDuration("DB_CONN_MAX_LIFETIME", 20*time.Minute),
		DB_MAX_IDLE_CONNS:         getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DB_MAX_OPEN_CONNS:         getEnvInt("DB_MAX_OPEN_CONNS", 100),
		SQLITE_PATH:               getEnvString("SQLITE_PATH", "employees.db"),
		DATASTORE_PROJECT_ID:      getEnvString("DATASTORE_PROJECT_ID", ""),
		ELASTIC_URL:               getEnvString("ELASTIC_URL", ""),
		ELASTIC_INDEX:             getEnvString("ELASTIC_INDEX", "employees"),
		DEPARTMENT_SERVICE_URL:    getEnvString("DEPARTMENT_SERVICE_URL", "http://localhost:8081"),
		DEPARTMENT_CLIENT_TIMEOUT: getEnvDuration("DEPARTMENT_CLIENT_TIMEOUT", 5*time.Second),
		EXPORT_LAYOUT_PATH:        getEnvString("EXPORT_LAYOUT_PATH", ""),
		LOG_FILE_PATH:             getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:                 getEnvString("LOG_LEVEL", "info"),
	}
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
