// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

type Config struct {
	Port          int    `env:"PORT" envDefault:"8080"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`

	Postgres Postgres
	Dynamo   Dynamo

	JWTSecret string `env:"JWT_SECRET"`
	JWTIssuer string `env:"JWT_ISSUER"`

	AllowSelfApplication bool          `env:"ALLOW_SELF_APPLICATION" envDefault:"false"`
	NotificationTimeout  time.Duration `env:"NOTIFICATION_TIMEOUT" envDefault:"5s"`

	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"1"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"5"`
	RateLimitTTL   time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`
	RedisURL       string        `env:"REDIS_URL"`
}

type Postgres struct {
	URL         string `env:"DATABASE_URL"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	MaxConns    int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	MinConns    int32  `env:"DB_MIN_CONNS" envDefault:"1"`
}

type Dynamo struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`

	UsuariosTable       string `env:"DYNAMODB_USUARIOS_TABLE" envDefault:"usuarios"`
	ProyectosTable      string `env:"DYNAMODB_PROYECTOS_TABLE" envDefault:"proyectos"`
	PuestosTable        string `env:"DYNAMODB_PUESTOS_TABLE" envDefault:"puestos"`
	PrestadoresTable    string `env:"DYNAMODB_PRESTADORES_TABLE" envDefault:"prestadores"`
	PostulacionesTable  string `env:"DYNAMODB_POSTULACIONES_TABLE" envDefault:"postulaciones"`
	SolicitudesTable    string `env:"DYNAMODB_SOLICITUDES_TABLE" envDefault:"solicitudes"`
	NotificacionesTable string `env:"DYNAMODB_NOTIFICACIONES_TABLE" envDefault:"notificaciones"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB:
	case StoragePostgres:
		if strings.TrimSpace(c.Postgres.URL) == "" {
			return errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}
