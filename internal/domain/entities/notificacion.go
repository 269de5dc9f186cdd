package entities

import "time"

// Notificacion is a durable per-user message. The only mutation after
// creation is Leida going from false to true.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (destinatario_id-index): destinatario_id, created_at
type Notificacion struct {
	ID             string    `json:"id"`
	DestinatarioID string    `json:"destinatario_id"`
	Titulo         string    `json:"titulo"`
	Mensaje        string    `json:"mensaje"`
	Link           *string   `json:"link,omitempty"`
	Leida          bool      `json:"leida"`
	CreatedAt      time.Time `json:"created_at"`
}
