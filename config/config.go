package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// MongoDB (contact submissions)
	MongoURI string
	MongoDB  string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	AdminEmail    string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Local view-counter store
	ViewsDBPath string
	// Other
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AppURL:         getEnv("APP_URL", "http://localhost:8080"),
		MongoURI:       getEnv("MONGODB_URI", ""),
		MongoDB:        getEnv("MONGODB_DB", "elevation_mentorship"),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "info@elevationmentorship.co.uk"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "Elevation Mentorship"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "info@elevationmentorship.co.uk"),
		EmailTestMode:  getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		ViewsDBPath:    getEnv("VIEWS_DB_PATH", "db/views.db"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// IsDevelopment reports whether the app runs with development error reporting.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
