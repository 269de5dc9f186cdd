package usecase

import "errors"

var (
	ErrForbidden = errors.New("access denied")

	ErrProyectoNotFound     = errors.New("proyecto not found")
	ErrPuestoNotFound       = errors.New("puesto not found")
	ErrPostulacionNotFound  = errors.New("postulacion not found")
	ErrPrestadorNotFound    = errors.New("prestador not found")
	ErrSolicitudNotFound    = errors.New("solicitud not found")
	ErrNotificacionNotFound = errors.New("notificacion not found")
	ErrRecipientNotFound    = errors.New("notification recipient not found")

	ErrPostulacionDuplicada = errors.New("already applied to this puesto")
	ErrSolicitudDuplicada   = errors.New("contact already requested for this prestador")

	ErrInvalidEstado       = errors.New("invalid estado")
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidMensaje      = errors.New("invalid mensaje")
	ErrInvalidProyecto     = errors.New("invalid proyecto")
	ErrInvalidPrestador    = errors.New("invalid prestador")
	ErrInvalidNotificacion = errors.New("invalid notificacion")
)
