package utils

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Email     EmailConfig
	OTP       OTPConfig
	Session   SessionConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

type EmailConfig struct {
	Provider       string // log, smtp or sendgrid
	Host           string
	Port           int
	User           string
	Password       string
	From           string
	FromName       string
	SendGridAPIKey string
	Timeout        time.Duration
}

type OTPConfig struct {
	ExpiryMinutes int

	// ExposeCode returns the raw code in the registration response. Development only.
	ExposeCode bool
}

type SessionConfig struct {
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
	CookieDomain string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled      bool
	AuthRequests int
	AuthWindow   time.Duration
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(envFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_NAME", "ecommerce-catalog")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("EMAIL_PROVIDER", "log")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("EMAIL_FROM", "noreply@example.com")
	v.SetDefault("EMAIL_TIMEOUT_SECONDS", 10)
	v.SetDefault("OTP_EXPIRY_MINUTES", 10)
	v.SetDefault("OTP_EXPOSE_CODE", false)
	v.SetDefault("SESSION_TTL_SECONDS", 3600)
	v.SetDefault("COOKIE_NAME", "auth_token")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_AUTH_REQUESTS", 10)
	v.SetDefault("RATE_LIMIT_AUTH_WINDOW_SECONDS", 60)

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Email: EmailConfig{
			Provider:       strings.ToLower(v.GetString("EMAIL_PROVIDER")),
			Host:           v.GetString("SMTP_HOST"),
			Port:           v.GetInt("SMTP_PORT"),
			User:           v.GetString("SMTP_USER"),
			Password:       v.GetString("SMTP_PASS"),
			From:           v.GetString("EMAIL_FROM"),
			FromName:       v.GetString("EMAIL_FROM_NAME"),
			SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
			Timeout:        time.Duration(v.GetInt("EMAIL_TIMEOUT_SECONDS")) * time.Second,
		},
		OTP: OTPConfig{
			ExpiryMinutes: v.GetInt("OTP_EXPIRY_MINUTES"),
			ExposeCode:    v.GetBool("OTP_EXPOSE_CODE"),
		},
		Session: SessionConfig{
			TTL:          time.Duration(v.GetInt("SESSION_TTL_SECONDS")) * time.Second,
			CookieName:   v.GetString("COOKIE_NAME"),
			CookieSecure: v.GetBool("COOKIE_SECURE"),
			CookieDomain: v.GetString("COOKIE_DOMAIN"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			Enabled:      v.GetBool("RATE_LIMIT_ENABLED"),
			AuthRequests: v.GetInt("RATE_LIMIT_AUTH_REQUESTS"),
			AuthWindow:   time.Duration(v.GetInt("RATE_LIMIT_AUTH_WINDOW_SECONDS")) * time.Second,
		},
	}

	return config, nil
}

func splitAndTrim(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
