package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, relying on system env vars")
	}
}

// GetEnv retrieves environment variables with a fallback
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// SMTPConfig carries the credentials for the OTP mail sender.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func LoadSMTP() SMTPConfig {
	cfg := SMTPConfig{
		Host: GetEnv("SMTP_HOST", ""),
		Port: GetEnv("SMTP_PORT", "465"),
		User: GetEnv("SMTP_USER", ""),
		Pass: GetEnv("SMTP_PASS", ""),
		From: GetEnv("SMTP_FROM", ""),
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return cfg
}
