package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OpsPort != "8080" {
		t.Fatalf("unexpected ops port %s", cfg.OpsPort)
	}
	if cfg.Storage.Driver != DriverBolt || cfg.Storage.Path != "leaguehub.db" {
		t.Fatalf("unexpected storage config %+v", cfg.Storage)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
	if !cfg.SeedOnEmpty {
		t.Fatalf("seed should default on")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_PATH", "/tmp/records")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SEED_ON_EMPTY", "false")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != DriverFile || cfg.Storage.Path != "/tmp/records" {
		t.Fatalf("unexpected storage config %+v", cfg.Storage)
	}
	if cfg.LogFormat != "json" || cfg.SeedOnEmpty || cfg.Metrics.Enabled {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
