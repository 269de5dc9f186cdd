package interfaces

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
)

// INotificacionRepository is the append-only notification log.
type INotificacionRepository interface {
	Create(ctx context.Context, n entities.Notificacion) (entities.Notificacion, error)
	GetByID(ctx context.Context, id string) (entities.Notificacion, error)
	ListByDestinatario(ctx context.Context, destinatarioID string) ([]entities.Notificacion, error)
	CountUnread(ctx context.Context, destinatarioID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, destinatarioID string) (int, error)
}
