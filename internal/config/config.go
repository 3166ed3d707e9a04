package config

import (
	"os"
	"strings"
)

// Environment names recognized in APP_ENV.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// defaultOrigins are the local development origins allowed when
// ALLOWED_ORIGINS is not set.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5000",
	"http://127.0.0.1:3000",
}

// Config holds all runtime configuration, resolved once at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// Environment is production or development. Error detail in 500
	// responses is included only outside production.
	Environment string
	// AllowedOrigins is the CORS origin allow-list.
	AllowedOrigins []string

	// ProjectID is the Google Cloud project hosting Firestore.
	ProjectID string
	// CredentialsFile optionally points at a service-account JSON file.
	CredentialsFile string

	// SendGridAPIKey enables outbound mail when non-empty.
	SendGridAPIKey string
	// FromAddress is the sender of all outbound mail.
	FromAddress string
	// FromName is the display name used on outbound mail.
	FromName string
	// OwnerAddress receives new-submission alerts.
	OwnerAddress string

	// AdminAuth enables bearer-token verification on admin routes.
	AdminAuth bool
}

// Load resolves configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", "8080"),
		Environment:     getenv("APP_ENV", EnvDevelopment),
		AllowedOrigins:  splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		ProjectID:       os.Getenv("GOOGLE_CLOUD_PROJECT"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		FromAddress:     getenv("EMAIL_FROM", "no-reply@example.com"),
		FromName:        getenv("EMAIL_FROM_NAME", "Portfolio"),
		OwnerAddress:    os.Getenv("EMAIL_TO"),
		AdminAuth:       isTruthy(os.Getenv("ADMIN_AUTH")),
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, frontend)
	}
	return cfg
}

// Production reports whether the process runs in production mode.
func (c Config) Production() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

// ExposeErrors reports whether raw error detail may appear in responses.
func (c Config) ExposeErrors() bool {
	return !c.Production()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return append([]string(nil), defaultOrigins...)
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return append([]string(nil), defaultOrigins...)
	}
	return origins
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
