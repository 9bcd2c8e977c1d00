package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Port              string
	DBDSN             string
	CORSOrigins       []string
	JWTSecret         string
	AdminPasswordHash string
	UploadDir         string
	BaseURL           string
	LogLevel          string
	GinMode           string
	SMTP              SMTPConfig
}

// SMTPConfig is optional. An empty Host switches the mailer to log-only mode.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	NotifyTo string
}

const defaultDSN = "root:root@tcp(127.0.0.1:3306)/autoshop?parseTime=true&loc=UTC"

// Load reads a .env file if present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("could not find or load .env file, relying on system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		slog.Warn("invalid SMTP_PORT, using 587", "value", os.Getenv("SMTP_PORT"))
		smtpPort = 587
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBDSN:             getEnv("DB_DSN_PRIMARY", defaultDSN),
		CORSOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		JWTSecret:         getEnv("JWT_SECRET", "A_VERY_SECURE_SECRET_KEY_REPLACE_LATER"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:           strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			NotifyTo: os.Getenv("NOTIFY_EMAIL"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
