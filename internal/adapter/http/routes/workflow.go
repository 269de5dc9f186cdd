package routes

import (
	"mercado_audiovisual/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPostulacion  = "/postulacion"
	PathSolicitud    = "/solicitud"
	PathNotificacion = "/notificacion"
	PathProyecto     = "/proyecto"
	PathPrestador    = "/prestador"
)

func addPostulacionRoutes(rg *gin.RouterGroup, h *handlers.PostulacionHandler, auth, submitLimit gin.HandlerFunc) {
	postulaciones := rg.Group(PathPostulacion, auth)
	{
		postulaciones.POST("", submitLimit, h.Submit)
		postulaciones.GET("/mis-postulaciones", h.ListMine)
		postulaciones.GET("/proyecto/:id", h.ListForProject)
		postulaciones.PATCH("/:id", h.Decide)
	}
}

func addSolicitudRoutes(rg *gin.RouterGroup, h *handlers.SolicitudHandler, auth, submitLimit gin.HandlerFunc) {
	solicitudes := rg.Group(PathSolicitud, auth)
	{
		solicitudes.POST("", submitLimit, h.Submit)
		solicitudes.GET("/recibidas", h.ListReceived)
		solicitudes.GET("/enviadas", h.ListSent)
		solicitudes.PATCH("/:id", h.Decide)
	}
}

func addNotificacionRoutes(rg *gin.RouterGroup, h *handlers.NotificacionHandler, auth gin.HandlerFunc) {
	notificaciones := rg.Group(PathNotificacion, auth)
	{
		notificaciones.GET("", h.List)
		notificaciones.GET("/badge", h.Badge)
		notificaciones.PATCH("/leer-todas", h.MarkAllRead)
		notificaciones.PATCH("/:id/leer", h.MarkRead)
	}
}

func addProyectoRoutes(rg *gin.RouterGroup, h *handlers.ProyectoHandler, auth gin.HandlerFunc) {
	proyectos := rg.Group(PathProyecto)
	{
		proyectos.GET("", h.List)
		proyectos.GET("/:id", h.Get)
		proyectos.POST("", auth, h.Create)
		proyectos.PATCH("/:id", auth, h.Update)
		proyectos.DELETE("/:id", auth, h.Delete)
	}
}

func addPrestadorRoutes(rg *gin.RouterGroup, h *handlers.PrestadorHandler, auth gin.HandlerFunc) {
	prestadores := rg.Group(PathPrestador)
	{
		prestadores.POST("", auth, h.Create)
		prestadores.GET("/mios", auth, h.ListMine)
		prestadores.GET("/:id", h.Get)
		prestadores.DELETE("/:id", auth, h.Delete)
	}
}
