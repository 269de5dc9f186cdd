package postgres

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"
)

const solicitudColumns = `id, solicitante_id, prestador_id, estado, created_at, updated_at`

type solicitudRow struct {
	ID            string    `db:"id"`
	SolicitanteID string    `db:"solicitante_id"`
	PrestadorID   string    `db:"prestador_id"`
	Estado        string    `db:"estado"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r solicitudRow) entity() entities.Solicitud {
	return entities.Solicitud{
		ID:            r.ID,
		SolicitanteID: r.SolicitanteID,
		PrestadorID:   r.PrestadorID,
		Estado:        entities.SolicitudEstado(r.Estado),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type SolicitudRepository struct {
	db DB
}

var _ interfaces.ISolicitudRepository = (*SolicitudRepository)(nil)

func NewSolicitudRepository(db DB) *SolicitudRepository {
	return &SolicitudRepository{db: db}
}

func (r *SolicitudRepository) Create(ctx context.Context, s entities.Solicitud) (entities.Solicitud, error) {
	_, err := r.db.Exec(ctx, `INSERT INTO solicitudes (`+solicitudColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.SolicitanteID, s.PrestadorID, string(s.Estado), s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return entities.Solicitud{}, mapWriteError(err)
	}
	return s, nil
}

func (r *SolicitudRepository) GetByID(ctx context.Context, id string) (entities.Solicitud, error) {
	row, err := one[solicitudRow](r.db.Query(ctx, `SELECT `+solicitudColumns+` FROM solicitudes WHERE id = $1`, id))
	if err != nil {
		return entities.Solicitud{}, err
	}
	return row.entity(), nil
}

func (r *SolicitudRepository) FindBySolicitanteAndPrestador(ctx context.Context, solicitanteID, prestadorID string) (entities.Solicitud, error) {
	row, err := one[solicitudRow](r.db.Query(ctx, `SELECT `+solicitudColumns+`
		FROM solicitudes WHERE solicitante_id = $1 AND prestador_id = $2`, solicitanteID, prestadorID))
	if err != nil {
		return entities.Solicitud{}, err
	}
	return row.entity(), nil
}

func (r *SolicitudRepository) ListBySolicitante(ctx context.Context, solicitanteID string) ([]entities.Solicitud, error) {
	return r.list(ctx, `SELECT `+solicitudColumns+` FROM solicitudes WHERE solicitante_id = $1 ORDER BY created_at DESC`, solicitanteID)
}

func (r *SolicitudRepository) ListByPrestador(ctx context.Context, prestadorID string) ([]entities.Solicitud, error) {
	return r.list(ctx, `SELECT `+solicitudColumns+` FROM solicitudes WHERE prestador_id = $1 ORDER BY created_at DESC`, prestadorID)
}

func (r *SolicitudRepository) list(ctx context.Context, sql string, arg string) ([]entities.Solicitud, error) {
	rows, err := all[solicitudRow](r.db.Query(ctx, sql, arg))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Solicitud, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

func (r *SolicitudRepository) UpdateEstado(ctx context.Context, id string, estado entities.SolicitudEstado) (entities.Solicitud, bool, error) {
	row, err := one[solicitudRow](r.db.Query(ctx, `UPDATE solicitudes SET estado = $2, updated_at = now()
		WHERE id = $1 AND estado <> $2
		RETURNING `+solicitudColumns, id, string(estado)))
	if err != nil {
		return entities.Solicitud{}, false, err
	}
	if row.ID != "" {
		return row.entity(), true, nil
	}
	current, err := r.GetByID(ctx, id)
	return current, false, err
}
