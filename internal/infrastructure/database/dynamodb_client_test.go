package database

import (
	"context"
	"mercado_audiovisual/internal/config"
	"testing"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.Dynamo{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected sa-east-1, got %q", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %q", creds.AccessKeyID)
	}
}

func TestConnectRedis_InvalidURL(t *testing.T) {
	if _, err := ConnectRedis(context.Background(), "not-a-redis-url"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestConnectPostgres_InvalidURL(t *testing.T) {
	if _, err := ConnectPostgres(context.Background(), config.Postgres{URL: "::not a url::"}); err == nil {
		t.Fatalf("expected error")
	}
}
