package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	AppEnv      string
	ServiceName string
	FrontendURL string
	// Notification recipient for operator copies
	ContactEmailTo string
	// Notifier backend: smtp | postmark | ses | dev
	EmailProvider string
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string // Sender address for every backend
	// Postmark
	PostmarkServerToken  string
	PostmarkAccountToken string
	// Amazon SES
	AWSRegion string
	// Dev sender output directory
	DevMailDir string
	// Redis/Upstash Configuration (optional shared rate-limit store)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds     int
	RateLimitContactThreshold  int
	RateLimitCourseThreshold   int
	RateLimitFeedbackThreshold int
	RateLimitSweepMinutes      int
	NotifyTimeoutSeconds       int
}

func LoadConfig() (*Config, error) {
	// Load .env file (local only, ignored when the file is missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		AppEnv:         getEnv("APP_ENV", "development"),
		ServiceName:    getEnv("SERVICE_NAME", "impulse-vlsi-backend"),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "admin@impulse-vlsi.com"),
		EmailProvider:  strings.ToLower(getEnv("EMAIL_PROVIDER", "smtp")),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@impulse-vlsi.com"),
		// Postmark
		PostmarkServerToken:  getEnv("POSTMARK_SERVER_TOKEN", ""),
		PostmarkAccountToken: getEnv("POSTMARK_ACCOUNT_TOKEN", ""),
		// SES
		AWSRegion: getEnv("AWS_REGION", "ap-south-1"),
		// Dev sender
		DevMailDir: getEnv("DEV_MAIL_DIR", "./tmp/mail"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (per endpoint thresholds within one window)
		RateLimitWindowSeconds:     getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold:  getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitCourseThreshold:   getEnvInt("RATE_LIMIT_COURSE_THRESHOLD", 5),
		RateLimitFeedbackThreshold: getEnvInt("RATE_LIMIT_FEEDBACK_THRESHOLD", 3),
		RateLimitSweepMinutes:      getEnvInt("RATE_LIMIT_SWEEP_MINUTES", 5),
		NotifyTimeoutSeconds:       getEnvInt("NOTIFY_TIMEOUT_SECONDS", 10),
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory store.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release" || c.AppEnv == "production"
}

// RateLimitWindow returns the fixed-window length
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// RateLimitSweepInterval returns how often the in-memory store drops stale entries
func (c *Config) RateLimitSweepInterval() time.Duration {
	return time.Duration(c.RateLimitSweepMinutes) * time.Minute
}

// NotifyTimeout bounds a single notification send
func (c *Config) NotifyTimeout() time.Duration {
	return time.Duration(c.NotifyTimeoutSeconds) * time.Second
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
