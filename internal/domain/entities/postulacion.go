package entities

import (
	"strings"
	"time"
)

// PostulacionEstado is the lifecycle of an application.
//
// Aceptada and Rechazada are not locked: the project owner may switch
// between them to correct a decision.
type PostulacionEstado string

const (
	PostulacionPendiente PostulacionEstado = "Pendiente"
	PostulacionAceptada  PostulacionEstado = "Aceptada"
	PostulacionRechazada PostulacionEstado = "Rechazada"
)

// ParsePostulacionDecision accepts the estados an owner may set through a
// decision, ignoring case and surrounding blanks.
func ParsePostulacionDecision(v string) (PostulacionEstado, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "aceptada":
		return PostulacionAceptada, true
	case "rechazada":
		return PostulacionRechazada, true
	default:
		return "", false
	}
}

// Postulacion is a user's application to a Puesto.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (postulante_id-index): postulante_id, created_at
//   - GSI (proyecto_id-index): proyecto_id, created_at
//   - uniqueness guard item: id = "uniq#postulacion#{postulante_id}#{puesto_id}"
type Postulacion struct {
	ID           string            `json:"id"`
	PostulanteID string            `json:"postulante_id"`
	PuestoID     string            `json:"puesto_id"`
	ProyectoID   string            `json:"proyecto_id"`
	Mensaje      string            `json:"mensaje"`
	Estado       PostulacionEstado `json:"estado"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
