package routes

import (
	"context"
	"fmt"
	"log"
	"mercado_audiovisual/internal/adapter/persistence/postgres"
	"mercado_audiovisual/internal/adapter/persistence/repository"
	"mercado_audiovisual/internal/config"
	"mercado_audiovisual/internal/infrastructure/database"
	"mercado_audiovisual/internal/infrastructure/ratelimit"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"
)

type store struct {
	usuarios       interfaces.IUsuarioRepository
	proyectos      interfaces.IProyectoRepository
	prestadores    interfaces.IPrestadorRepository
	postulaciones  interfaces.IPostulacionRepository
	solicitudes    interfaces.ISolicitudRepository
	notificaciones interfaces.INotificacionRepository
	close          func()
}

func openStore(ctx context.Context, cfg config.Config) (*store, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, storeError(cfg.StorageDriver, err)
		}
		if cfg.Postgres.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, storeError(cfg.StorageDriver, err)
			}
		}
		return &store{
			usuarios:       postgres.NewUsuarioRepository(pool),
			proyectos:      postgres.NewProyectoRepository(pool),
			prestadores:    postgres.NewPrestadorRepository(pool),
			postulaciones:  postgres.NewPostulacionRepository(pool),
			solicitudes:    postgres.NewSolicitudRepository(pool),
			notificaciones: postgres.NewNotificacionRepository(pool),
			close:          pool.Close,
		}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
		if err != nil {
			return nil, storeError(cfg.StorageDriver, err)
		}
		tables := dynamoTables(cfg.Dynamo)
		return &store{
			usuarios:       repository.NewUsuarioDynamoRepository(ddb, tables),
			proyectos:      repository.NewProyectoDynamoRepository(ddb, tables),
			prestadores:    repository.NewPrestadorDynamoRepository(ddb, tables),
			postulaciones:  repository.NewPostulacionDynamoRepository(ddb, tables),
			solicitudes:    repository.NewSolicitudDynamoRepository(ddb, tables),
			notificaciones: repository.NewNotificacionDynamoRepository(ddb, tables),
			close:          func() {},
		}, nil
	}
}

func storeError(driver string, err error) error {
	return fmt.Errorf("%s: %w", driver, err)
}

func dynamoTables(cfg config.Dynamo) repository.Tables {
	return repository.Tables{
		Usuarios:       cfg.UsuariosTable,
		Proyectos:      cfg.ProyectosTable,
		Puestos:        cfg.PuestosTable,
		Prestadores:    cfg.PrestadoresTable,
		Postulaciones:  cfg.PostulacionesTable,
		Solicitudes:    cfg.SolicitudesTable,
		Notificaciones: cfg.NotificacionesTable,
	}
}

// newLimiter prefers the shared Redis limiter and falls back to the
// in-process one when REDIS_URL is unset or unreachable.
func newLimiter(ctx context.Context, cfg config.Config) (ratelimit.Limiter, func()) {
	local := ratelimit.NewMapLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitTTL)
	if cfg.RedisURL == "" {
		return local, func() {}
	}
	client, err := database.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Printf("[ratelimit][routes] redis unavailable, using in-process limiter err=%v", err)
		return local, func() {}
	}
	if local == nil {
		_ = client.Close()
		return nil, func() {}
	}
	// A fixed window of burst requests refilled at rps on average.
	window := time.Duration(float64(cfg.RateLimitBurst) / cfg.RateLimitRPS * float64(time.Second))
	shared := ratelimit.NewRedisLimiter(client, "ratelimit:submit:", cfg.RateLimitBurst, window)
	if shared == nil {
		_ = client.Close()
		return local, func() {}
	}
	return shared, func() { _ = client.Close() }
}
