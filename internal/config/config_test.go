package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("PORT", "")
	t.Setenv("CACHE_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 || cfg.Addr() != ":8080" {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.CatalogSource != SourceTMDB {
		t.Errorf("expected tmdb source, got %q", cfg.CatalogSource)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("expected 10m ttl, got %s", cfg.CacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("TMDB_RATE_LIMIT", "4.5")
	t.Setenv("DB_POOL_SIZE", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 || cfg.CatalogSource != SourcePostgres {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.CacheTTL != 90*time.Second || cfg.TMDBRateLimit != 4.5 {
		t.Errorf("unexpected ttl/rate %s %f", cfg.CacheTTL, cfg.TMDBRateLimit)
	}
	if cfg.DBPoolSize != 20 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.DBPoolSize)
	}
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "mongo")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown catalog source")
	}
}

func TestEnvHelpersFallBack(t *testing.T) {
	t.Setenv("TEST_INT", "x")
	t.Setenv("TEST_FLOAT", "1.5")
	t.Setenv("TEST_DUR", "soon")

	if got := getEnv("TEST_UNSET", "dflt"); got != "dflt" {
		t.Errorf("getEnv = %q", got)
	}
	if got := getEnvInt("TEST_INT", 3); got != 3 {
		t.Errorf("getEnvInt = %d", got)
	}
	if got := getEnvFloat("TEST_FLOAT", 0); got != 1.5 {
		t.Errorf("getEnvFloat = %f", got)
	}
	if got := getEnvDuration("TEST_DUR", time.Second); got != time.Second {
		t.Errorf("getEnvDuration = %s", got)
	}
}
