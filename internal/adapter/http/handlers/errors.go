package handlers

import (
	"errors"
	"mercado_audiovisual/internal/adapter/http/middleware"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase"
	"mercado_audiovisual/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid bearer token", http.StatusUnauthorized)
)

// mapError translates use-case errors into the stable codes clients switch on.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPuestoNotFound):
		return pkg.NewDomainErrorSimple("PUESTO_NOT_FOUND", "Puesto not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProyectoNotFound):
		return pkg.NewDomainErrorSimple("PROYECTO_NOT_FOUND", "Proyecto not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPostulacionNotFound):
		return pkg.NewDomainErrorSimple("POSTULACION_NOT_FOUND", "Postulacion not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrestadorNotFound):
		return pkg.NewDomainErrorSimple("PRESTADOR_NOT_FOUND", "Prestador not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSolicitudNotFound):
		return pkg.NewDomainErrorSimple("SOLICITUD_NOT_FOUND", "Solicitud not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificacionNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICACION_NOT_FOUND", "Notificacion not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPostulacionDuplicada):
		return pkg.NewDomainErrorSimple("ALREADY_APPLIED", "You already applied to this puesto", http.StatusConflict)
	case errors.Is(err, usecase.ErrSolicitudDuplicada):
		return pkg.NewDomainErrorSimple("ALREADY_REQUESTED", "You already requested contact with this prestador", http.StatusConflict)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "You are not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidEstado):
		return pkg.NewDomainErrorSimple("INVALID_ESTADO", "Invalid estado for this workflow", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidMensaje),
		errors.Is(err, usecase.ErrInvalidProyecto),
		errors.Is(err, usecase.ErrInvalidPrestador),
		errors.Is(err, usecase.ErrInvalidNotificacion):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireActor returns the authenticated caller or writes a 401.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		abortWith(c, errUnauthenticated)
		return entities.Actor{}, false
	}
	return actor, true
}
