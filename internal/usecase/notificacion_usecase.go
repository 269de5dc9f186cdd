package usecase

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

// INotificacionUseCase exposes the notification log to the workflows (Emit)
// and to the presentation layer (badge, list, mark read).
type INotificacionUseCase interface {
	interfaces.INotificationEmitter
	UnreadCount(ctx context.Context, actor entities.Actor) (int, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.Notificacion, error)
	MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notificacion, error)
	MarkAllRead(ctx context.Context, actor entities.Actor) (int, error)
}

type NotificacionUseCase struct {
	repo     interfaces.INotificacionRepository
	usuarios interfaces.IUsuarioRepository
}

var _ INotificacionUseCase = (*NotificacionUseCase)(nil)

func NewNotificacionUseCase(repo interfaces.INotificacionRepository, usuarios interfaces.IUsuarioRepository) *NotificacionUseCase {
	return &NotificacionUseCase{repo: repo, usuarios: usuarios}
}

func (u *NotificacionUseCase) Emit(ctx context.Context, destinatarioID, titulo, mensaje string, link *string) (entities.Notificacion, error) {
	destinatarioID = strings.TrimSpace(destinatarioID)
	titulo = strings.TrimSpace(titulo)
	if destinatarioID == "" || titulo == "" {
		return entities.Notificacion{}, ErrInvalidNotificacion
	}

	destinatario, err := u.usuarios.GetByID(ctx, destinatarioID)
	if err != nil {
		return entities.Notificacion{}, err
	}
	if destinatario.ID == "" {
		return entities.Notificacion{}, ErrRecipientNotFound
	}

	n := entities.Notificacion{
		ID:             uuid.NewString(),
		DestinatarioID: destinatarioID,
		Titulo:         titulo,
		Mensaje:        strings.TrimSpace(mensaje),
		Link:           link,
		Leida:          false,
		CreatedAt:      time.Now().UTC(),
	}
	return u.repo.Create(ctx, n)
}

func (u *NotificacionUseCase) UnreadCount(ctx context.Context, actor entities.Actor) (int, error) {
	if actor.UserID == "" {
		return 0, ErrForbidden
	}
	return u.repo.CountUnread(ctx, actor.UserID)
}

func (u *NotificacionUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.Notificacion, error) {
	if actor.UserID == "" {
		return nil, ErrForbidden
	}
	items, err := u.repo.ListByDestinatario(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	newestFirst(items, func(n entities.Notificacion) time.Time { return n.CreatedAt })
	return items, nil
}

// MarkRead is restricted to the recipient; admins cannot read on behalf of
// other users.
func (u *NotificacionUseCase) MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notificacion, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notificacion{}, ErrInvalidID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notificacion{}, err
	}
	if n.ID == "" {
		return entities.Notificacion{}, ErrNotificacionNotFound
	}
	if n.DestinatarioID != actor.UserID {
		return entities.Notificacion{}, ErrForbidden
	}
	if n.Leida {
		return n, nil
	}

	if err := u.repo.MarkRead(ctx, n.ID); err != nil {
		return entities.Notificacion{}, err
	}
	n.Leida = true
	return n, nil
}

func (u *NotificacionUseCase) MarkAllRead(ctx context.Context, actor entities.Actor) (int, error) {
	if actor.UserID == "" {
		return 0, ErrForbidden
	}
	return u.repo.MarkAllRead(ctx, actor.UserID)
}
