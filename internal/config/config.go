package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Upload  UploadConfig
	UI      UIConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

type UploadConfig struct {
	MaxFileSize   int64
	MaxBatchFiles int
}

type UIConfig struct {
	DefaultLanguage i18n.Language
	DefaultModel    string
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Backend: BackendConfig{
			URL:     strings.TrimRight(getEnv("API_URL", getEnv("NEXT_PUBLIC_API_URL", "http://localhost:8000")), "/"),
			Timeout: getEnvAsDuration("BACKEND_TIMEOUT", "120s"),
		},
		Upload: UploadConfig{
			MaxFileSize:   getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			MaxBatchFiles: getEnvAsInt("MAX_BATCH_FILES", 10),
		},
		UI: UIConfig{
			DefaultLanguage: getEnvAsLanguage("DEFAULT_LANGUAGE", i18n.Vietnamese),
			DefaultModel:    getEnv("DEFAULT_MODEL", "gemini-2.0-flash"),
		},
		Session: SessionConfig{
			TTL:           getEnvAsDuration("SESSION_TTL", "2h"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "5m"),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// Validate rejects settings the front cannot run with.
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("API_URL must not be empty")
	}
	if c.Upload.MaxBatchFiles <= 0 {
		return fmt.Errorf("MAX_BATCH_FILES must be positive, got %d", c.Upload.MaxBatchFiles)
	}
	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Upload.MaxFileSize)
	}
	if c.Session.TTL <= 0 || c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_TTL and SESSION_SWEEP_INTERVAL must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsLanguage(key string, defaultValue i18n.Language) i18n.Language {
	if lang, ok := i18n.Parse(getEnv(key, "")); ok {
		return lang
	}
	return defaultValue
}
