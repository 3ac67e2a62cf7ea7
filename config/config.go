package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSMTPTimeoutSeconds bounds a single SMTP send when SMTP_TIMEOUT_SECONDS is unset or not positive
const DefaultSMTPTimeoutSeconds = 30

type Config struct {
	Port        string
	Env         string
	DBUrl       string
	FrontendURL string
	// Extra origins allowed by CORS on top of FrontendURL
	CORSAllowedOrigins []string
	// SMTP Configuration (Gmail app password by default)
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPFromEmail      string
	SMTPTimeoutSeconds int
	// Contact form
	ContactEmailTo          string
	ContactMinMessageLength int
	EmailTemplate           string // "classic" or "card"
	// Site owner, shown in the confirmation email and /profile
	OwnerName     string
	OwnerTitle    string
	OwnerLocation string
	WhatsAppURL   string
	LinkedInURL   string
	GitHubURL     string
}

func LoadConfig() (*Config, error) {
	// .env only exists locally; production injects real env vars
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("APP_ENV", "development"),
		DBUrl:              getEnv("DATABASE_URL", ""),
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		// SMTP Configuration
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SMTPTimeoutSeconds: getEnvInt("SMTP_TIMEOUT_SECONDS", DefaultSMTPTimeoutSeconds),
		// Contact form
		ContactEmailTo:          getEnv("CONTACT_EMAIL_TO", "alvchdev@gmail.com"),
		ContactMinMessageLength: getEnvInt("CONTACT_MIN_MESSAGE_LENGTH", 10),
		EmailTemplate:           strings.ToLower(getEnv("EMAIL_TEMPLATE", "classic")),
		// Owner
		OwnerName:     getEnv("OWNER_NAME", "Álvaro"),
		OwnerTitle:    getEnv("OWNER_TITLE", "Full Stack Developer"),
		OwnerLocation: getEnv("OWNER_LOCATION", "Chile"),
		WhatsAppURL:   getEnv("SOCIAL_WHATSAPP_URL", "https://wa.me/948583700"),
		LinkedInURL:   getEnv("SOCIAL_LINKEDIN_URL", "https://linkedin.com/in/alvaro-chavez-melo-35392b338"),
		GitHubURL:     getEnv("SOCIAL_GITHUB_URL", "https://github.com/TiL3Ss"),
	}
	// Gmail rejects a From that differs from the authenticated account
	cfg.SMTPFromEmail = getEnv("SMTP_FROM_EMAIL", cfg.SMTPUsername)

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP_USERNAME/SMTP_PASSWORD missing. Contact form submissions will fail.")
	}
	if cfg.ContactMinMessageLength < 0 {
		cfg.ContactMinMessageLength = 0
	}
	if cfg.SMTPTimeoutSeconds <= 0 {
		cfg.SMTPTimeoutSeconds = DefaultSMTPTimeoutSeconds
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in release mode
func (c *Config) IsProduction() bool {
	return c.Env == "production" || os.Getenv("GIN_MODE") == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
