package routes

import (
	"context"
	"fmt"
	"log"
	_ "mercado_audiovisual/docs"
	"mercado_audiovisual/internal/adapter/http/handlers"
	"mercado_audiovisual/internal/adapter/http/middleware"
	"mercado_audiovisual/internal/config"
	"mercado_audiovisual/internal/infrastructure/identity"
	"mercado_audiovisual/internal/infrastructure/metrics"
	"mercado_audiovisual/internal/infrastructure/ratelimit"
	"mercado_audiovisual/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires storage, use cases and handlers, then serves until the listener
// fails. Resources opened here are released before it returns.
func Run(cfg config.Config) error {
	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.close()

	rec := metrics.NewRecorder()
	limiter, closeLimiter := newLimiter(ctx, cfg)
	defer closeLimiter()

	router := NewRouter(Dependencies{
		UseCases: newUseCases(cfg, store, rec),
		Verifier: identity.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer),
		Metrics:  rec,
		Limiter:  limiter,
	})

	log.Printf("[http][routes] listening port=%d storage=%s", cfg.Port, cfg.StorageDriver)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

type UseCases struct {
	Postulaciones  usecase.IPostulacionUseCase
	Solicitudes    usecase.ISolicitudUseCase
	Notificaciones usecase.INotificacionUseCase
	Proyectos      usecase.IProyectoUseCase
	Prestadores    usecase.IPrestadorUseCase
}

func newUseCases(cfg config.Config, store *store, rec *metrics.Recorder) UseCases {
	policy := usecase.NewPolicy(cfg.AllowSelfApplication)
	notificaciones := usecase.NewNotificacionUseCase(store.notificaciones, store.usuarios)
	notifier := usecase.NewNotifier(notificaciones, rec, cfg.NotificationTimeout)

	return UseCases{
		Postulaciones:  usecase.NewPostulacionUseCase(store.postulaciones, store.proyectos, store.usuarios, notifier, policy, rec),
		Solicitudes:    usecase.NewSolicitudUseCase(store.solicitudes, store.prestadores, store.usuarios, notifier, policy, rec),
		Notificaciones: notificaciones,
		Proyectos:      usecase.NewProyectoUseCase(store.proyectos, policy),
		Prestadores:    usecase.NewPrestadorUseCase(store.prestadores, policy),
	}
}

type Dependencies struct {
	UseCases UseCases
	Verifier middleware.TokenVerifier
	Metrics  *metrics.Recorder
	Limiter  ratelimit.Limiter
}

// NewRouter builds the gin engine. Every /v1 route except ping and the
// public catalog reads requires a bearer token.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.Metrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	var observer middleware.RejectionObserver
	if deps.Metrics != nil {
		observer = deps.Metrics
	}
	submitLimit := middleware.RateLimit(deps.Limiter, observer)
	auth := middleware.Authenticate(deps.Verifier)

	addPostulacionRoutes(v1, handlers.NewPostulacionHandler(deps.UseCases.Postulaciones), auth, submitLimit)
	addSolicitudRoutes(v1, handlers.NewSolicitudHandler(deps.UseCases.Solicitudes), auth, submitLimit)
	addNotificacionRoutes(v1, handlers.NewNotificacionHandler(deps.UseCases.Notificaciones), auth)
	addProyectoRoutes(v1, handlers.NewProyectoHandler(deps.UseCases.Proyectos), auth)
	addPrestadorRoutes(v1, handlers.NewPrestadorHandler(deps.UseCases.Prestadores), auth)
	return router
}

func setMiddlewares(router *gin.Engine, rec *metrics.Recorder) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	if rec != nil {
		router.Use(rec.Middleware())
	}
}
