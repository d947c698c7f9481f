package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()
	if cfg.Port != "3002" {
		t.Fatalf("expected default port 3002, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if len(cfg.CORSAllowOrigin) == 0 {
		t.Fatalf("expected a default CORS origin")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "Prod")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example.com , https://b.example.com ,")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env normalized to production, got %q", cfg.Env)
	}
	if cfg.DatabaseURL == "" {
		t.Fatalf("expected database url passthrough")
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[0] != "https://a.example.com" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowOrigin)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"local":      "local",
		"anything":   "dev",
		"":           "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
