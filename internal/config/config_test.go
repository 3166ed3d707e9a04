package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "APP_ENV", "ALLOWED_ORIGINS", "FRONTEND_URL",
		"GOOGLE_CLOUD_PROJECT", "GOOGLE_APPLICATION_CREDENTIALS",
		"SENDGRID_API_KEY", "EMAIL_FROM", "EMAIL_FROM_NAME", "EMAIL_TO",
		"ADMIN_AUTH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Environment != EnvDevelopment {
		t.Errorf("expected development, got %s", cfg.Environment)
	}
	if len(cfg.AllowedOrigins) != 3 {
		t.Errorf("expected 3 default origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AdminAuth {
		t.Error("expected admin auth disabled by default")
	}
	if cfg.Production() {
		t.Error("expected non-production by default")
	}
	if !cfg.ExposeErrors() {
		t.Error("expected error detail exposed outside production")
	}
}

func TestLoadProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	cfg := Load()

	if !cfg.Production() {
		t.Error("expected production mode")
	}
	if cfg.ExposeErrors() {
		t.Error("expected error detail suppressed in production")
	}
}

func TestLoadOriginsList(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://example.com, https://www.example.com ,")
	cfg := Load()

	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[0] != "https://example.com" {
		t.Errorf("unexpected origin %q", cfg.AllowedOrigins[0])
	}
	if cfg.AllowedOrigins[1] != "https://www.example.com" {
		t.Errorf("expected trimmed origin, got %q", cfg.AllowedOrigins[1])
	}
}

func TestLoadFrontendURLAppended(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRONTEND_URL", "https://portfolio.example.com")
	cfg := Load()

	last := cfg.AllowedOrigins[len(cfg.AllowedOrigins)-1]
	if last != "https://portfolio.example.com" {
		t.Errorf("expected frontend URL appended, got %v", cfg.AllowedOrigins)
	}
}

func TestAdminAuthTruthy(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"maybe", false},
	}
	for _, tc := range cases {
		clearEnv(t)
		t.Setenv("ADMIN_AUTH", tc.value)
		if got := Load().AdminAuth; got != tc.want {
			t.Errorf("ADMIN_AUTH=%q: got %v, want %v", tc.value, got, tc.want)
		}
	}
}
