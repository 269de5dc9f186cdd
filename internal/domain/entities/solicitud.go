package entities

import (
	"strings"
	"time"
)

// SolicitudEstado is the lifecycle of a contact request.
type SolicitudEstado string

const (
	SolicitudPendiente SolicitudEstado = "Pendiente"
	SolicitudAprobada  SolicitudEstado = "Aprobada"
	SolicitudRechazada SolicitudEstado = "Rechazada"
)

func ParseSolicitudDecision(v string) (SolicitudEstado, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "aprobada":
		return SolicitudAprobada, true
	case "rechazada":
		return SolicitudRechazada, true
	default:
		return "", false
	}
}

// Solicitud is a contact request directed at a Prestador profile. Only one
// may exist per (solicitante, prestador), whatever its estado.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (solicitante_id-index): solicitante_id, created_at
//   - GSI (prestador_id-index): prestador_id, created_at
//   - uniqueness guard item: id = "uniq#solicitud#{solicitante_id}#{prestador_id}"
type Solicitud struct {
	ID            string          `json:"id"`
	SolicitanteID string          `json:"solicitante_id"`
	PrestadorID   string          `json:"prestador_id"`
	Estado        SolicitudEstado `json:"estado"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
