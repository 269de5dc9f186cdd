package entities

import "time"

// Estados commonly used by the presentation layer. The set is open: any
// non-empty value is accepted on create/update.
const (
	ProyectoEstadoAbierto      = "Abierto"
	ProyectoEstadoEnProduccion = "En Producción"
	ProyectoEstadoCerrado      = "Cerrado"
)

// Proyecto is a film/media production posting open positions.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (owner_id-index): owner_id, created_at
//
// Puestos are persisted in their own table and loaded on demand.
type Proyecto struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Titulo       string    `json:"titulo"`
	Tipo         string    `json:"tipo"`
	Ciudad       string    `json:"ciudad"`
	Descripcion  string    `json:"descripcion"`
	Foto         string    `json:"foto"`
	Estado       string    `json:"estado"`
	EsEstudiante bool      `json:"es_estudiante"`
	EsPago       bool      `json:"es_pago"`
	Puestos      []Puesto  `json:"puestos,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Puesto is a single open position inside a Proyecto.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (proyecto_id-index): proyecto_id
type Puesto struct {
	ID          string    `json:"id"`
	ProyectoID  string    `json:"proyecto_id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
}
