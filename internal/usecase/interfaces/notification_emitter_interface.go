package interfaces

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
)

// INotificationEmitter appends a notification for a recipient.
type INotificationEmitter interface {
	Emit(ctx context.Context, destinatarioID, titulo, mensaje string, link *string) (entities.Notificacion, error)
}
