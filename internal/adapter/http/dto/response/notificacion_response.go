package response

import (
	"mercado_audiovisual/internal/domain/entities"
	"time"
)

type NotificacionResponse struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Mensaje   string    `json:"mensaje"`
	Link      *string   `json:"link"`
	Leida     bool      `json:"leida"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromNotificacion(n entities.Notificacion) NotificacionResponse {
	return NotificacionResponse{
		ID:        n.ID,
		Titulo:    n.Titulo,
		Mensaje:   n.Mensaje,
		Link:      n.Link,
		Leida:     n.Leida,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotificaciones(items []entities.Notificacion) []NotificacionResponse {
	out := make([]NotificacionResponse, 0, len(items))
	for _, n := range items {
		out = append(out, FromNotificacion(n))
	}
	return out
}

type CountResponse struct {
	Count int `json:"count"`
}
