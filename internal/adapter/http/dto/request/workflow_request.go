package request

import "strings"

type PostulacionRequest struct {
	PuestoID string `json:"puestoId" binding:"required"`
	Mensaje  string `json:"mensaje"`
}

func (r PostulacionRequest) ResolvePuestoID() string {
	return strings.TrimSpace(r.PuestoID)
}

type SolicitudRequest struct {
	PrestadorID string `json:"prestadorId" binding:"required"`
}

func (r SolicitudRequest) ResolvePrestadorID() string {
	return strings.TrimSpace(r.PrestadorID)
}

// EstadoRequest carries an owner decision. The value is validated by the
// use case so both workflows report INVALID_ESTADO the same way.
type EstadoRequest struct {
	Estado string `json:"estado" binding:"required"`
}
