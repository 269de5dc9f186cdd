package postgres

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"
)

const notificacionColumns = `id, destinatario_id, titulo, mensaje, link, leida, created_at`

type notificacionRow struct {
	ID             string    `db:"id"`
	DestinatarioID string    `db:"destinatario_id"`
	Titulo         string    `db:"titulo"`
	Mensaje        string    `db:"mensaje"`
	Link           *string   `db:"link"`
	Leida          bool      `db:"leida"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r notificacionRow) entity() entities.Notificacion {
	return entities.Notificacion{
		ID:             r.ID,
		DestinatarioID: r.DestinatarioID,
		Titulo:         r.Titulo,
		Mensaje:        r.Mensaje,
		Link:           r.Link,
		Leida:          r.Leida,
		CreatedAt:      r.CreatedAt,
	}
}

type NotificacionRepository struct {
	db DB
}

var _ interfaces.INotificacionRepository = (*NotificacionRepository)(nil)

func NewNotificacionRepository(db DB) *NotificacionRepository {
	return &NotificacionRepository{db: db}
}

func (r *NotificacionRepository) Create(ctx context.Context, n entities.Notificacion) (entities.Notificacion, error) {
	_, err := r.db.Exec(ctx, `INSERT INTO notificaciones (`+notificacionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.ID, n.DestinatarioID, n.Titulo, n.Mensaje, n.Link, n.Leida, n.CreatedAt)
	if err != nil {
		return entities.Notificacion{}, mapWriteError(err)
	}
	return n, nil
}

func (r *NotificacionRepository) GetByID(ctx context.Context, id string) (entities.Notificacion, error) {
	row, err := one[notificacionRow](r.db.Query(ctx, `SELECT `+notificacionColumns+` FROM notificaciones WHERE id = $1`, id))
	if err != nil {
		return entities.Notificacion{}, err
	}
	return row.entity(), nil
}

func (r *NotificacionRepository) ListByDestinatario(ctx context.Context, destinatarioID string) ([]entities.Notificacion, error) {
	rows, err := all[notificacionRow](r.db.Query(ctx, `SELECT `+notificacionColumns+`
		FROM notificaciones WHERE destinatario_id = $1 ORDER BY created_at DESC`, destinatarioID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Notificacion, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

func (r *NotificacionRepository) CountUnread(ctx context.Context, destinatarioID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notificaciones WHERE destinatario_id = $1 AND NOT leida`, destinatarioID).Scan(&count)
	return count, err
}

func (r *NotificacionRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE notificaciones SET leida = TRUE WHERE id = $1 AND NOT leida`, id)
	return err
}

func (r *NotificacionRepository) MarkAllRead(ctx context.Context, destinatarioID string) (int, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notificaciones SET leida = TRUE WHERE destinatario_id = $1 AND NOT leida`, destinatarioID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
