package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Upload   UploadConfig
	Reset    ResetConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type SessionConfig struct {
	Secret string
	Name   string
}

type UploadConfig struct {
	Dir         string
	MaxFileSize int64
}

type ResetConfig struct {
	Secret     string
	Expiration time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	resetExp, err := time.ParseDuration(getEnv("RESET_TOKEN_EXPIRATION", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESET_TOKEN_EXPIRATION: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5984"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "foxscrb"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
			Name:   getEnv("SESSION_NAME", "foxscrb_session"),
		},
		Upload: UploadConfig{
			Dir:         getEnv("UPLOAD_DIR", "./public/uploads"),
			MaxFileSize: int64(getEnvAsInt("UPLOAD_MAX_FILE_SIZE", 5242880)),
		},
		Reset: ResetConfig{
			Secret:     getEnv("RESET_TOKEN_SECRET", "dev-reset-secret"),
			Expiration: resetExp,
		},
	}, nil
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
