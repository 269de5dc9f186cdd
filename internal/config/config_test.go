package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.StorageDriver != StorageDynamoDB {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.NotificationTimeout != 5*time.Second {
		t.Fatalf("expected 5s notification timeout, got %s", cfg.NotificationTimeout)
	}
	if cfg.AllowSelfApplication {
		t.Fatalf("self application must be disabled by default")
	}
	if cfg.Dynamo.PostulacionesTable != "postulaciones" || cfg.Dynamo.Region != "us-east-1" {
		t.Fatalf("unexpected dynamo defaults: %+v", cfg.Dynamo)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", " Postgres ")
	t.Setenv("DATABASE_URL", "postgres://localhost/mercado")
	t.Setenv("ALLOW_SELF_APPLICATION", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StorageDriver != StoragePostgres || !cfg.AllowSelfApplication || cfg.RateLimitRPS != 2.5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORAGE_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
