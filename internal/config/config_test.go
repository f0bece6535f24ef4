package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"STORE_DRIVER", "SEED_DEMO", "PORT", "HOST", "CORS_ALLOWED_ORIGINS",
		"DEBUG", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.Store.Driver != DriverMemory {
		t.Fatalf("expected memory driver without a database, got %q", cfg.Store.Driver)
	}
	if cfg.Server.Addr() != "0.0.0.0:5000" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" || cfg.Logging.File != "error.log" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if len(cfg.CORS.AllowedOrigins) != 0 {
		t.Fatalf("expected no CORS origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestFromEnvBuildsDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_USER", "fyyur")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "fyyur")
	t.Setenv("DB_HOST", "db")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.Database.URL != "postgresql://fyyur:secret@db:5432/fyyur?sslmode=disable" {
		t.Fatalf("unexpected URL %q", cfg.Database.URL)
	}
	if cfg.Store.Driver != DriverPostgres {
		t.Fatalf("expected postgres driver, got %q", cfg.Store.Driver)
	}
}

func TestFromEnvDebugDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUG", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if !cfg.Logging.Debug || cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("PORT", "70000")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"DATABASE_URL", "PORT", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in error, got %v", want, err)
		}
	}
}

func TestFromEnvRejectsBadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for non-numeric PORT")
	}
}
