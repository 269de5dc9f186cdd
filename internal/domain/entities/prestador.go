package entities

import "time"

// Prestador is a professional or company service profile. A user may own
// several of them.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (owner_id-index): owner_id, created_at
type Prestador struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	TipoPerfil  string    `json:"tipo_perfil"`
	Nombre      string    `json:"nombre"`
	Rubro       string    `json:"rubro"`
	Descripcion string    `json:"descripcion"`
	Email       string    `json:"email"`
	Telefono    string    `json:"telefono"`
	Web         string    `json:"web"`
	Ciudad      string    `json:"ciudad"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
